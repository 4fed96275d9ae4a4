//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"
	sharedmock "coworking-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccessCodeIssuer_Issue(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	params := commands.IssueParams{CustomerID: 100, SpaceID: 1, ValidFrom: from, ValidTo: from.Add(24*time.Hour - time.Second)}

	t.Run("stores the QR artifact under the code id after the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		qr := sharedmock.NewMockQRStore(ctrl)
		var urlFor string
		gomock.InOrder(
			qr.EXPECT().DownloadURL(gomock.Any()).DoAndReturn(func(id string) string {
				urlFor = id
				return "https://cdn.example.com/qr/" + id + ".png"
			}),
			qr.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		store := newMemStore()
		issuer := commands.NewAccessCodeIssuer(qr, clock.NewMockClock(testNow))

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			code, err := issuer.Issue(ctx, tx, params)
			if err != nil {
				return err
			}
			assert.Equal(t, urlFor, code.ID())
			assert.Equal(t, "https://cdn.example.com/qr/"+code.ID()+".png", code.QRCodeURL())
			return nil
		})

		require.NoError(t, err)
		assert.Len(t, store.accessCodes(), 1)
	})

	t.Run("inverted window is rejected without touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		qr := sharedmock.NewMockQRStore(ctrl)
		qr.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		store := newMemStore()
		issuer := commands.NewAccessCodeIssuer(qr, clock.NewMockClock(testNow))
		bad := params
		bad.ValidTo = from.Add(-time.Second)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := issuer.Issue(ctx, tx, bad)
			return err
		})

		assert.ErrorIs(t, err, shared.ErrInvalidDateRange)
		assert.Empty(t, store.accessCodes())
	})
}
