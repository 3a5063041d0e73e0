package impl

import (
	"context"
	"log/slog"

	deliverycontext "freshmarket/internal/delivery/context"
	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		srv.log(ctx).Error("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}

	srv.log(ctx).Debug("Creating cart on first access", slog.Any("userID", userID))

	newCart := &entity.Cart{UserID: userID, Items: []*entity.CartItem{}}
	if createErr := srv.cartRepo.Create(ctx, newCart); createErr != nil {
		srv.log(ctx).Error("Failed to create cart", slog.Any("userID", userID), slog.Any("error", createErr))

		return nil, errors.Wrap(createErr, "failed to create cart")
	}

	return newCart, nil
}

// AddItem puts a product into the user's cart. Adding a product already in the
// cart merges into the existing line. The subtotal is always quantity times the
// product's current price.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("userID", userID), slog.Any("productID", input.ProductID))

	var resultItem *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cart, cartErr := srv.loadOrCreateCart(ctx, cartRepo, userID)
		if cartErr != nil {
			return cartErr
		}

		product, productErr := productRepo.FindByID(ctx, input.ProductID)
		if productErr != nil {
			if errors.Is(productErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(productErr, "failed to load product for cart")
		}

		for _, existing := range cart.Items {
			if existing.ProductID != input.ProductID {
				continue
			}

			existing.Quantity += input.Quantity
			existing.Subtotal = int64(existing.Quantity) * product.Price
			if updateErr := cartRepo.UpdateItem(ctx, existing); updateErr != nil {
				return errors.Wrap(updateErr, "failed to merge cart item")
			}
			existing.Product = product
			resultItem = existing

			return nil
		}

		newItem := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Subtotal:  int64(input.Quantity) * product.Price,
		}
		if createErr := cartRepo.CreateItem(ctx, newItem); createErr != nil {
			return errors.Wrap(createErr, "failed to create cart item")
		}
		newItem.Product = product
		resultItem = newItem

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return resultItem, nil
}

// UpdateItem changes the quantity of an item in the user's cart and recomputes
// the line subtotal from the product's current price.
func (srv *cartService) UpdateItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, input *usecase.UpdateCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Updating cart item", slog.Any("userID", userID), slog.Any("itemID", itemID))

	var resultItem *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, ownErr := srv.loadOwnedItem(ctx, cartRepo, userID, itemID)
		if ownErr != nil {
			return ownErr
		}

		// The subtotal must track the quantity change, so a missing preload
		// triggers a reload instead of keeping the stale value.
		if item.Product == nil {
			product, productErr := repoFactory.ProductRepo().FindByID(ctx, item.ProductID)
			if productErr != nil {
				return errors.Wrap(productErr, "failed to load product for subtotal")
			}
			item.Product = product
		}

		item.Quantity = input.Quantity
		item.Subtotal = int64(input.Quantity) * item.Product.Price

		if updateErr := cartRepo.UpdateItem(ctx, item); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update cart item")
		}

		resultItem = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart item", slog.Any("userID", userID), slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, err
	}

	return resultItem, nil
}

// RemoveItem deletes an item from the user's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	srv.log(ctx).Debug("Removing cart item", slog.Any("userID", userID), slog.Any("itemID", itemID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, ownErr := srv.loadOwnedItem(ctx, cartRepo, userID, itemID)
		if ownErr != nil {
			return ownErr
		}

		if deleteErr := cartRepo.DeleteItem(ctx, item.ID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete cart item")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove cart item", slog.Any("userID", userID), slog.Any("itemID", itemID), slog.Any("error", err))

		return err
	}

	return nil
}

// loadOrCreateCart returns the user's cart, creating one when none exists yet.
func (srv *cartService) loadOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	newCart := &entity.Cart{UserID: userID, Items: []*entity.CartItem{}}
	if createErr := cartRepo.Create(ctx, newCart); createErr != nil {
		return nil, errors.Wrap(createErr, "failed to create cart")
	}

	return newCart, nil
}

// loadOwnedItem loads a cart item and verifies it belongs to the user's cart.
func (srv *cartService) loadOwnedItem(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart item not found")
		}

		return nil, errors.Wrap(err, "failed to load cart item")
	}

	cart, err := cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart item not found")
		}

		return nil, errors.Wrap(err, "failed to load cart for ownership check")
	}

	if item.CartID != cart.ID {
		return nil, domainerrors.ErrCartOwnershipViolation.WrapMessage("cart item belongs to another user")
	}

	return item, nil
}
