package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelgoals/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetDetailed(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetPaymentStatus(ctx context.Context, id int64, from, to domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) MarkPaidConfirm(ctx context.Context, id int64, method, transactionID string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, id, method, transactionID, paidAt)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyPaymentSucceeded(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyPaymentFailed(ctx context.Context, b *domain.Booking, reason string) error {
	args := m.Called(ctx, b, reason)
	return args.Error(0)
}

func unpaidBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        5,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
		TotalPrice:    decimal.RequireFromString("3300.00"),
		NumTravelers:  3,
	}
}

func validCard() SubmitPaymentRequest {
	return SubmitPaymentRequest{
		CardNumber:  "4111 1111 1111 1111",
		CardHolder:  "Test Customer",
		ExpiryMonth: 12,
		ExpiryYear:  time.Now().Year() + 2,
		CVV:         "123",
	}
}

func TestService_SubmitPayment_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	paidAt := time.Now().UTC()
	paid := unpaidBooking()
	paid.Status = domain.BookingConfirmed
	paid.PaymentStatus = domain.PaymentPaid
	paid.PaymentMethod = "Credit Card (****1111)"
	paid.PaymentTransactionID = "TXN4F2A91C07B3D"
	paid.PaymentDate = &paidAt

	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentUnpaid, domain.PaymentProcessing).Return(true, nil)
	mockBookings.On("MarkPaidConfirm", mock.Anything, int64(1), "Credit Card (****1111)",
		mock.MatchedBy(func(txn string) bool {
			return len(txn) == 15 && txn[:3] == "TXN"
		}), mock.Anything).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(paid, nil)
	mockNotifs.On("NotifyPaymentSucceeded", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockNotifs)

	result, err := service.SubmitPayment(context.Background(), 1, 5, validCard())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, result.Status)
	assert.Equal(t, domain.PaymentPaid, result.PaymentStatus)
	assert.Equal(t, "TXN4F2A91C07B3D", result.TransactionID)
	mockNotifs.AssertCalled(t, "NotifyPaymentSucceeded", mock.Anything, mock.Anything)
}

func TestService_SubmitPayment_BadCardNumber(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentUnpaid, domain.PaymentProcessing).Return(true, nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentProcessing, domain.PaymentFailed).Return(true, nil)
	mockNotifs.On("NotifyPaymentFailed", mock.Anything, mock.Anything, "invalid card number").Return(nil)

	service := NewService(mockBookings, mockNotifs)

	req := validCard()
	req.CardNumber = "4111111111111112" // fails Luhn

	_, err := service.SubmitPayment(context.Background(), 1, 5, req)

	assert.ErrorIs(t, err, ErrCardInvalid)
	mockBookings.AssertCalled(t, "SetPaymentStatus", mock.Anything, int64(1), domain.PaymentProcessing, domain.PaymentFailed)
	mockBookings.AssertNotCalled(t, "MarkPaidConfirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SubmitPayment_ExpiredCard(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentUnpaid, domain.PaymentProcessing).Return(true, nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentProcessing, domain.PaymentFailed).Return(true, nil)

	service := NewService(mockBookings, nil)

	req := validCard()
	req.ExpiryYear = time.Now().Year() - 1

	_, err := service.SubmitPayment(context.Background(), 1, 5, req)
	assert.ErrorIs(t, err, ErrCardExpired)
}

func TestService_SubmitPayment_RetryAfterFailure(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	failed := unpaidBooking()
	failed.PaymentStatus = domain.PaymentFailed
	paidAt := time.Now().UTC()
	paid := unpaidBooking()
	paid.Status = domain.BookingConfirmed
	paid.PaymentStatus = domain.PaymentPaid
	paid.PaymentDate = &paidAt

	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(failed, nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentUnpaid, domain.PaymentProcessing).Return(false, nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentFailed, domain.PaymentProcessing).Return(true, nil)
	mockBookings.On("MarkPaidConfirm", mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(paid, nil)
	mockNotifs.On("NotifyPaymentSucceeded", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockNotifs)

	result, err := service.SubmitPayment(context.Background(), 1, 5, validCard())

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, result.PaymentStatus)
}

func TestService_SubmitPayment_AlreadyPaid(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	paid := unpaidBooking()
	paid.Status = domain.BookingConfirmed
	paid.PaymentStatus = domain.PaymentPaid
	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(paid, nil)

	service := NewService(mockBookings, nil)

	_, err := service.SubmitPayment(context.Background(), 1, 5, validCard())

	assert.ErrorIs(t, err, ErrAlreadyPaid)
	mockBookings.AssertNotCalled(t, "SetPaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SubmitPayment_ConcurrentSubmission(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentUnpaid, domain.PaymentProcessing).Return(false, nil)
	mockBookings.On("SetPaymentStatus", mock.Anything, int64(1), domain.PaymentFailed, domain.PaymentProcessing).Return(false, nil)

	service := NewService(mockBookings, nil)

	_, err := service.SubmitPayment(context.Background(), 1, 5, validCard())
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestService_SubmitPayment_CancelledBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	cancelled := unpaidBooking()
	cancelled.Status = domain.BookingCancelled
	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(cancelled, nil)

	service := NewService(mockBookings, nil)

	_, err := service.SubmitPayment(context.Background(), 1, 5, validCard())
	assert.ErrorIs(t, err, ErrBookingTerminal)
}

func TestService_SubmitPayment_ForeignUser(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)

	service := NewService(mockBookings, nil)

	_, err := service.SubmitPayment(context.Background(), 1, 6, validCard())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetReceipt_UnpaidBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetDetailed", mock.Anything, int64(1)).Return(unpaidBooking(), nil)

	service := NewService(mockBookings, nil)

	_, err := service.GetReceipt(context.Background(), 1, 5, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCardValidation(t *testing.T) {
	assert.True(t, validCardNumber("4111111111111111"))
	assert.True(t, validCardNumber("5555555555554444"))
	assert.False(t, validCardNumber("4111111111111112"))
	assert.False(t, validCardNumber("1234"))
	assert.False(t, validCardNumber("41111111x1111111"))

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, validExpiry(6, 2026, now), "expiring this month is still valid")
	assert.True(t, validExpiry(1, 27, now), "two-digit years mean 20xx")
	assert.False(t, validExpiry(5, 2026, now))
	assert.False(t, validExpiry(13, 2030, now))

	assert.Equal(t, "Credit Card (****1111)", maskedMethod("4111111111111111"))
}
