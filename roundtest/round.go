// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package roundtest provides a gomock-based mock of round.Round for
// driver-level unit tests that need to control EndBlock's threshold
// signal directly, without driving a real round through payloads.
package roundtest

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/round"
	"github.com/luxfi/priceround/state"
)

// MockRound is a mock of the round.Round interface.
type MockRound struct {
	ctrl     *gomock.Controller
	recorder *MockRoundMockRecorder
}

// MockRoundMockRecorder is the mock recorder for MockRound.
type MockRoundMockRecorder struct {
	mock *MockRound
}

// NewMockRound returns a new mock of round.Round.
func NewMockRound(ctrl *gomock.Controller) *MockRound {
	mock := &MockRound{ctrl: ctrl}
	mock.recorder = &MockRoundMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// use of this mock.
func (m *MockRound) EXPECT() *MockRoundMockRecorder {
	return m.recorder
}

// ID mocks round.Round.ID.
func (m *MockRound) ID() round.ID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(round.ID)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *MockRoundMockRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*MockRound)(nil).ID))
}

// Apply mocks round.Round.Apply.
func (m *MockRound) Apply(p payload.Payload) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", p)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Apply indicates an expected call of Apply.
func (mr *MockRoundMockRecorder) Apply(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockRound)(nil).Apply), p)
}

// EndBlock mocks round.Round.EndBlock.
func (m *MockRound) EndBlock() (state.PeriodState, round.Round, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EndBlock")
	ret0, _ := ret[0].(state.PeriodState)
	ret1, _ := ret[1].(round.Round)
	ret2, _ := ret[2].(bool)
	return ret0, ret1, ret2
}

// EndBlock indicates an expected call of EndBlock.
func (mr *MockRoundMockRecorder) EndBlock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EndBlock", reflect.TypeOf((*MockRound)(nil).EndBlock))
}
