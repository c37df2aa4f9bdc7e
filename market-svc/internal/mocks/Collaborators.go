package mocks

import (
	context "context"
	io "io"
	url "net/url"

	domain "food-marketplace/market-svc/internal/domain"
	service "food-marketplace/market-svc/internal/service"

	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// Pusher is a mock type for the Pusher type
type Pusher struct {
	mock.Mock
}

func (_m *Pusher) Push(ctx context.Context, userID uuid.UUID, msg domain.PushMessage) error {
	ret := _m.Called(ctx, userID, msg)
	return ret.Error(0)
}

func NewPusher(t testingT) *Pusher {
	m := &Pusher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderEventPublisher is a mock type for the OrderEventPublisher type
type OrderEventPublisher struct {
	mock.Mock
}

func (_m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// PaymentGateway is a mock type for the PaymentGateway type
type PaymentGateway struct {
	mock.Mock
}

func (_m *PaymentGateway) BuildPaymentURL(req service.PaymentRequest) string {
	ret := _m.Called(req)
	return ret.String(0)
}

func (_m *PaymentGateway) VerifyCallback(params url.Values) bool {
	ret := _m.Called(params)
	return ret.Bool(0)
}

func NewPaymentGateway(t testingT) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Notify(ctx context.Context, userID uuid.UUID, title, message string, kind domain.NotificationType, data interface{}) error {
	ret := _m.Called(ctx, userID, title, message, kind, data)
	return ret.Error(0)
}

func (_m *Notifier) PushEvent(ctx context.Context, userID uuid.UUID, event string, payload interface{}) {
	_m.Called(ctx, userID, event, payload)
}

func NewNotifier(t testingT) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// QRGenerator is a mock type for the QRGenerator type
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(content string) ([]byte, error) {
	ret := _m.Called(content)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ImageStore is a mock type for the ImageStore type
type ImageStore struct {
	mock.Mock
}

func (_m *ImageStore) Save(name string, content io.Reader) (string, error) {
	ret := _m.Called(name, content)
	return ret.String(0), ret.Error(1)
}

func NewImageStore(t testingT) *ImageStore {
	m := &ImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
