//	mockgen -source=internal/engine/engine.go -destination=internal/engine/mocks/mock_ledger.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	domain "github.com/sergiupopescu199/payment-engine/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockLedger is a mock of Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
	isgomock struct{}
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// Apply mocks base method.
func (m *MockLedger) Apply(tx domain.Transaction) domain.Outcome {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", tx)
	ret0, _ := ret[0].(domain.Outcome)
	return ret0
}

// Apply indicates an expected call of Apply.
func (mr *MockLedgerMockRecorder) Apply(tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockLedger)(nil).Apply), tx)
}

// Snapshot mocks base method.
func (m *MockLedger) Snapshot() []domain.Account {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Snapshot")
	ret0, _ := ret[0].([]domain.Account)
	return ret0
}

// Snapshot indicates an expected call of Snapshot.
func (mr *MockLedgerMockRecorder) Snapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Snapshot", reflect.TypeOf((*MockLedger)(nil).Snapshot))
}
