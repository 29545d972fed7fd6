package application

import (
	"testing"

	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDepositCase_Deposit(t *testing.T) {
	t.Parallel()

	buyer := domain.User{ID: 1, Role: domain.RoleBuyer, Deposit: 20}

	type testCase struct {
		name     string
		callerID int
		userID   int
		amount   uint32

		prepareFn func(t *testing.T, d *caseDeps)

		expectedBalance uint32
		expectedErr     error
	}

	tests := []testCase{
		{
			name:     "accepted coin",
			callerID: 1,
			userID:   1,
			amount:   50,
			prepareFn: func(t *testing.T, d *caseDeps) {
				d.usersRepository.EXPECT().GetUserByID(gomock.Any(), 1).Return(buyer, nil)
				d.usersRepository.EXPECT().IncrementDeposit(gomock.Any(), 1, uint32(50)).Return(uint32(70), nil)
			},
			expectedBalance: 70,
		},
		{
			name:        "coin not accepted",
			callerID:    1,
			userID:      1,
			amount:      25,
			prepareFn:   func(t *testing.T, d *caseDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "zero amount",
			callerID:    1,
			userID:      1,
			amount:      0,
			prepareFn:   func(t *testing.T, d *caseDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "someone else's account",
			callerID:    1,
			userID:      2,
			amount:      10,
			prepareFn:   func(t *testing.T, d *caseDeps) {},
			expectedErr: &domain.AuthorizationError{},
		},
		{
			name:     "seller cannot deposit",
			callerID: 2,
			userID:   2,
			amount:   10,
			prepareFn: func(t *testing.T, d *caseDeps) {
				d.usersRepository.EXPECT().GetUserByID(gomock.Any(), 2).
					Return(domain.User{ID: 2, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.AuthorizationError{},
		},
		{
			name:     "increment failure",
			callerID: 1,
			userID:   1,
			amount:   100,
			prepareFn: func(t *testing.T, d *caseDeps) {
				d.usersRepository.EXPECT().GetUserByID(gomock.Any(), 1).Return(buyer, nil)
				d.usersRepository.EXPECT().IncrementDeposit(gomock.Any(), 1, uint32(100)).Return(uint32(0), assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newCaseDeps(ctrl)
			tt.prepareFn(t, d)

			depositCase := NewDepositCase(d.authorizer(), d.usersRepository)
			balance, err := depositCase.Deposit(t.Context(), tt.callerID, tt.userID, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestDepositCase_Reset(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		callerID int
		userID   int

		prepareFn func(t *testing.T, d *caseDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "reset",
			callerID: 1,
			userID:   1,
			prepareFn: func(t *testing.T, d *caseDeps) {
				d.usersRepository.EXPECT().GetUserByID(gomock.Any(), 1).
					Return(domain.User{ID: 1, Role: domain.RoleBuyer, Deposit: 35}, nil)
				d.usersRepository.EXPECT().ResetDeposit(gomock.Any(), 1).Return(uint32(0), nil)
			},
		},
		{
			name:        "someone else's account",
			callerID:    1,
			userID:      3,
			prepareFn:   func(t *testing.T, d *caseDeps) {},
			expectedErr: &domain.AuthorizationError{},
		},
		{
			name:     "seller cannot reset",
			callerID: 2,
			userID:   2,
			prepareFn: func(t *testing.T, d *caseDeps) {
				d.usersRepository.EXPECT().GetUserByID(gomock.Any(), 2).
					Return(domain.User{ID: 2, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.AuthorizationError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newCaseDeps(ctrl)
			tt.prepareFn(t, d)

			depositCase := NewDepositCase(d.authorizer(), d.usersRepository)
			balance, err := depositCase.Reset(t.Context(), tt.callerID, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Zero(t, balance)
			}
		})
	}
}
