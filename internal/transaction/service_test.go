package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgrattan/fieldhand/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *transaction.MockRepository)
		wantAmount int64
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "ExpenseStoredNegative",
			args: args{
				params: transaction.CreateParams{
					FarmID:      1,
					Type:        transaction.TypeExpense,
					Category:    "Seeds",
					Amount:      38750,
					Description: "Fall seed order",
					Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = 1
						return nil
					})
			},
			wantAmount: -38750,
			wantErr:    false,
		},
		{
			name: "IncomeStoredPositive",
			args: args{
				params: transaction.CreateParams{
					FarmID:   1,
					Type:     transaction.TypeIncome,
					Category: "Crop Sales",
					Amount:   452000,
					Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = 2
						return nil
					})
			},
			wantAmount: 452000,
			wantErr:    false,
		},
		{
			name: "NegativeInputNormalized",
			args: args{
				params: transaction.CreateParams{
					FarmID: 1,
					Type:   transaction.TypeIncome,
					Amount: -90000,
					Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantAmount: 90000,
			wantErr:    false,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{Amount: 500, Type: transaction.TypeExpense},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}
}

func TestService_Create_DefaultsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo)
	got, err := svc.Create(context.Background(), transaction.CreateParams{
		Type:   transaction.TypeExpense,
		Amount: 100,
	})

	require.NoError(t, err)
	assert.False(t, got.Date.IsZero())
}

func TestService_Update_RederivesSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	var saved transaction.Transaction

	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			saved = *tx
			return nil
		})

	svc := transaction.NewService(repo)

	// A transaction loaded as an expense (negative) whose type was
	// flipped to income must come out positive with the same magnitude.
	tx := &transaction.Transaction{
		ID:     1,
		Type:   transaction.TypeIncome,
		Amount: -21500,
	}

	require.NoError(t, svc.Update(context.Background(), tx))
	assert.Equal(t, int64(21500), saved.Amount)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]*transaction.Transaction{
			{ID: 1, Type: transaction.TypeIncome, Amount: 50000, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Type: transaction.TypeExpense, Amount: -20000, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		}, nil)

	svc := transaction.NewService(repo)
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(50000), summary.TotalIncome)
	assert.Equal(t, int64(20000), summary.TotalExpenses)
	assert.Equal(t, int64(30000), summary.NetProfit)
	require.Len(t, summary.Recent, 2)
	assert.Equal(t, int64(2), summary.Recent[0].ID)
}
