package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	fx := cartServiceFixtures{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
	}
	fx.service = NewCartService(CartServiceParams{
		CartRepo:    fx.cartRepo,
		ProductRepo: fx.productRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCartService_Add(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: 3, Name: "Mug", PriceCents: 1200}
	lines := []*entity.CartLine{{Product: *product, Quantity: 2}}

	fx.productRepo.EXPECT().FindByID(ctx, int64(3)).Return(product, nil)
	fx.cartRepo.EXPECT().AddOne(ctx, userID, int64(3)).Return(nil)
	fx.cartRepo.EXPECT().ListLines(ctx, userID).Return(lines, nil)

	got, err := fx.service.Add(ctx, userID, 3)

	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	fx.productRepo.EXPECT().FindByID(context.Background(), int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Add(context.Background(), uuid.New(), 99)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("single line", func(t *testing.T) {
		fx := createTestCartService(t)
		productID := int64(3)
		fx.cartRepo.EXPECT().Remove(ctx, userID, productID).Return(nil)
		fx.cartRepo.EXPECT().ListLines(ctx, userID).Return([]*entity.CartLine{}, nil)

		got, err := fx.service.Remove(ctx, userID, &productID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("whole cart", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)
		fx.cartRepo.EXPECT().ListLines(ctx, userID).Return(nil, nil)

		_, err := fx.service.Remove(ctx, userID, nil)

		require.NoError(t, err)
	})

	t.Run("missing line", func(t *testing.T) {
		fx := createTestCartService(t)
		productID := int64(4)
		fx.cartRepo.EXPECT().Remove(ctx, userID, productID).Return(repository.ErrCartItemNotFound)

		_, err := fx.service.Remove(ctx, userID, &productID)

		assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("sets quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().SetQuantity(ctx, userID, int64(3), 5).Return(nil)
		fx.cartRepo.EXPECT().ListLines(ctx, userID).Return(nil, nil)

		_, err := fx.service.UpdateQuantity(ctx, userID, 3, 5)

		require.NoError(t, err)
	})

	t.Run("zero removes", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Remove(ctx, userID, int64(3)).Return(nil)
		fx.cartRepo.EXPECT().ListLines(ctx, userID).Return(nil, nil)

		_, err := fx.service.UpdateQuantity(ctx, userID, 3, 0)

		require.NoError(t, err)
	})

	t.Run("negative rejected", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.UpdateQuantity(ctx, userID, 3, -1)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
