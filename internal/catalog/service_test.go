package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bundakue/titipan/internal/catalog"
)

func TestService_AddPartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	repo.EXPECT().
		CreatePartner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *catalog.Partner) error {
			p.ID = uuid.New()
			return nil
		})

	svc := catalog.NewService(repo)
	got, err := svc.AddPartner(context.Background(), catalog.PartnerParams{
		Name:    "Rumah Klapy",
		Address: "Jl. Sam Ratulangi",
	})

	require.NoError(t, err)
	assert.Equal(t, "Rumah Klapy", got.Name)
	assert.Equal(t, catalog.DefaultContact, got.Contact)
	assert.NotEmpty(t, got.ID)
}

func TestService_AddProduct(t *testing.T) {
	type args struct {
		params catalog.ProductParams
	}

	type testCase struct {
		name         string
		args         args
		setupMock    func(m *catalog.MockRepository)
		wantPrice    int64
		wantCategory string
		wantErr      bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: catalog.ProductParams{
					Name:     "RISOLES",
					Price:    3000,
					Category: "Gorengan",
				},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *catalog.Product) error {
						p.ID = uuid.New()
						return nil
					})
			},
			wantPrice:    3000,
			wantCategory: "Gorengan",
		},
		{
			name: "EmptyCategoryDefaulted",
			args: args{
				params: catalog.ProductParams{Name: "ZEBRA", Price: 2000},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPrice:    2000,
			wantCategory: catalog.DefaultCategory,
		},
		{
			name: "NegativePriceClampedToZero",
			args: args{
				params: catalog.ProductParams{Name: "ANGKA", Price: -100},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPrice:    0,
			wantCategory: catalog.DefaultCategory,
		},
		{
			name: "RepoError",
			args: args{
				params: catalog.ProductParams{Name: "BALAPIS", Price: 2500},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := catalog.NewService(repo)
			got, err := svc.AddProduct(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

func TestService_EditProduct(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := catalog.NewMockRepository(ctrl)
		repo.EXPECT().
			GetProduct(gomock.Any(), id).
			Return(&catalog.Product{ID: id, Name: "ZEBRA", Price: 2000}, nil)
		repo.EXPECT().
			UpdateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *catalog.Product) error {
				assert.Equal(t, "ZEBRA SPESIAL", p.Name)
				assert.Equal(t, int64(2500), p.Price)
				return nil
			})

		svc := catalog.NewService(repo)
		got, err := svc.EditProduct(context.Background(), id, "ZEBRA SPESIAL", 2500)

		require.NoError(t, err)
		assert.Equal(t, int64(2500), got.Price)
	})

	t.Run("MissingProductIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := catalog.NewMockRepository(ctrl)
		repo.EXPECT().
			GetProduct(gomock.Any(), id).
			Return(nil, catalog.ErrNotFound)

		svc := catalog.NewService(repo)
		got, err := svc.EditProduct(context.Background(), id, "GONE", 1000)

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
