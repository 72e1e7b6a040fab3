package kafka

import (
	"moviecatalog/catalog/pkg/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		want    *model.RatingEvent
		wantErr bool
	}{
		{
			name: "put",
			msg:  `{"movieId":7,"rating":4,"userIdentifier":"anon_123","providerId":"test-provider","eventType":"put"}`,
			want: &model.RatingEvent{
				Rating:     model.Rating{MovieID: 7, Value: 4, UserIdentifier: "anon_123"},
				ProviderID: "test-provider",
				EventType:  model.RatingEventTypePut,
			},
		},
		{
			name: "delete",
			msg:  `{"movieId":7,"userIdentifier":"ann","eventType":"delete"}`,
			want: &model.RatingEvent{
				Rating:    model.Rating{MovieID: 7, UserIdentifier: "ann"},
				EventType: model.RatingEventTypeDelete,
			},
		},
		{name: "garbage", msg: `{`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.msg))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
