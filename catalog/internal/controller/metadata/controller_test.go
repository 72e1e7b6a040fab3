package metadata

import (
	"context"
	"errors"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"testing"

	gen "moviecatalog/gen/mock/catalog/controller/metadata"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestByExternalID(t *testing.T) {
	tests := []struct {
		name         string
		cacheRes     *model.Metadata
		cacheErr     error
		gatewayCall  bool
		gatewayRes   *model.Metadata
		gatewayErr   error
		cachePutCall bool
		wantRes      *model.Metadata
		wantErr      error
	}{
		{
			name:     "cached",
			cacheRes: &model.Metadata{Title: "Se7en"},
			wantRes:  &model.Metadata{Title: "Se7en"},
		},
		{
			name:        "not found",
			cacheErr:    repository.ErrNotFound,
			gatewayCall: true,
			gatewayErr:  gateway.ErrNotFound,
			wantErr:     ErrNotFound,
		},
		{
			name:        "unexpected error",
			cacheErr:    repository.ErrNotFound,
			gatewayCall: true,
			gatewayErr:  errors.New("unexpected error"),
			wantErr:     errors.New("unexpected error"),
		},
		{
			name:         "success",
			cacheErr:     repository.ErrNotFound,
			gatewayCall:  true,
			gatewayRes:   &model.Metadata{Title: "Se7en"},
			cachePutCall: true,
			wantRes:      &model.Metadata{Title: "Se7en"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cacheMock := gen.NewMockmetadataCache(ctrl)
			gatewayMock := gen.NewMockmetadataGateway(ctrl)
			c := New(cacheMock, gatewayMock, zap.NewNop())
			ctx := context.Background()
			id := "tt0114369"
			cacheMock.EXPECT().Get(ctx, "id:"+id).Return(tt.cacheRes, tt.cacheErr)
			if tt.gatewayCall {
				gatewayMock.EXPECT().LookupByExternalID(ctx, id).Return(tt.gatewayRes, tt.gatewayErr)
			}
			if tt.cachePutCall {
				cacheMock.EXPECT().Put(ctx, "id:"+id, tt.gatewayRes).Return(nil)
			}
			res, err := c.ByExternalID(ctx, id)
			assert.Equal(t, tt.wantRes, res, tt.name)
			assert.Equal(t, tt.wantErr, err, tt.name)
		})
	}
}

func TestForEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := gen.NewMockmetadataCache(ctrl)
	gatewayMock := gen.NewMockmetadataGateway(ctrl)
	c := New(cacheMock, gatewayMock, zap.NewNop())
	ctx := context.Background()
	m := &model.Metadata{Title: "Heat"}

	cacheMock.EXPECT().Get(ctx, "title:heat:1995").Return(nil, repository.ErrNotFound)
	gatewayMock.EXPECT().LookupByTitleYear(ctx, "Heat", 1995).Return(m, nil)
	cacheMock.EXPECT().Put(ctx, "title:heat:1995", m).Return(errors.New("cache full"))
	res, err := c.ForEntry(ctx, &model.Entry{Title: "Heat", Year: 1995})
	assert.NoError(t, err)
	assert.Equal(t, m, res)

	cacheMock.EXPECT().Get(ctx, "id:tt0113277").Return(m, nil)
	res, err = c.ForEntry(ctx, &model.Entry{Title: "Heat", ImdbID: "tt0113277"})
	assert.NoError(t, err)
	assert.Equal(t, m, res)
}
