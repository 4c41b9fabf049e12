// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/mock"
	"github.com/MyungJiwoo/career-log/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// typeInto sends s to m one rune at a time and returns the updated model.
func typeInto(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func TestRootModel_Navigation(t *testing.T) {
	menu := NewMenuModel()
	login := NewLoginModel(context.Background(), nil)
	root := NewRootModel(map[string]tea.Model{pageMenu: menu, pageLogin: login}, pageMenu, models.AppBuildInfo{})

	updated, _ := root.Update(NavigateTo{Page: pageLogin})
	assert.Same(t, login, updated.(RootModel).current)

	updated, _ = updated.Update(NavigateTo{Page: "missing"})
	assert.Same(t, login, updated.(RootModel).current, "unknown pages are ignored")
}

func TestRootModel_PayloadIsDelivered(t *testing.T) {
	menu := NewMenuModel()
	root := NewRootModel(map[string]tea.Model{pageMenu: menu}, pageMenu, models.AppBuildInfo{})

	notice := RegisterSuccessNotice{Username: "jiwoo"}
	updated, cmd := root.Update(NavigateTo{Page: pageMenu, Payload: notice})
	require.NotNil(t, cmd)
	assert.Equal(t, notice, cmd())

	updated, _ = updated.Update(notice)
	assert.Contains(t, updated.View(), "jiwoo")
}

func TestRootModel_LoginResultEndsFlow(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})
	user := models.User{UserID: 42, Username: "jiwoo"}

	updated, cmd := root.Update(LoginResult{User: user})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, user, updated.(RootModel).user)
	assert.False(t, updated.(RootModel).quitByUser)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.0", "", "abc123")
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel(), pageLogin: NewLoginModel(context.Background(), nil)}, pageMenu, info)

	updated, _ := root.Update(runes("v"))
	view := updated.View()
	assert.Contains(t, view, "Version:     v1.2.0")
	assert.Contains(t, view, "Date:        N/A")

	_, cmd := updated.Update(enterKey)
	assert.Nil(t, cmd, "keys are swallowed while the window is open")

	updated, _ = updated.Update(escKey)
	assert.NotContains(t, updated.View(), "ABOUT")

	updated, _ = updated.Update(NavigateTo{Page: pageLogin})
	updated, _ = updated.Update(runes("v"))
	assert.False(t, updated.(RootModel).showBuildInfo, "only the menu opens the window")
}

func TestMenuModel_Select(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(enterKey)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(enterKey)
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())
}

func TestLoginModel_RequiresFields(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "username and password are required")
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	m := NewLoginModel(context.Background(), api)

	user := models.User{UserID: 42, Username: "jiwoo"}
	api.EXPECT().Login(gomock.Any(), models.Credentials{Username: "jiwoo", Password: "secret1"}).Return(user, nil)

	typeInto(t, m, "jiwoo")
	m.Update(tabKey)
	typeInto(t, m, "secret1")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Equal(t, LoginResult{User: user}, cmd())

	_, cmd = m.Update(enterKey)
	assert.Nil(t, cmd, "no second submit while one is in flight")
}

func TestLoginModel_ShowsRemainingAttempts(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.submitting = true
	m.inputs[1].SetValue("wrong")

	m.Update(LoginResult{Err: &adapter.LoginError{Message: "wrong password", RemainingAttempts: 3}})

	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[1].Value())
	assert.Contains(t, m.View(), "wrong password (3 attempts left)")
}

func TestLoginModel_EscGoesBack(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	_, cmd := m.Update(escKey)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.inputs[0].SetValue("jiwoo")
	m.inputs[1].SetValue("secret1")
	m.inputs[2].SetValue("secret2")

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "passwords do not match", m.errMsg)
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	m := NewRegisterModel(context.Background(), api)

	api.EXPECT().Signup(gomock.Any(), models.Credentials{Username: "jiwoo", Password: "secret1"}).Return(nil)

	m.inputs[0].SetValue("jiwoo")
	m.inputs[1].SetValue("secret1")
	m.inputs[2].SetValue("secret1")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, RegisterResult{Username: "jiwoo"}, result)

	_, cmd = m.Update(result)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "jiwoo"}}, cmd())
	assert.Empty(t, m.inputs[0].Value(), "form is reset after signup")
}

func TestRegisterModel_Conflict(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.submitting = true

	m.Update(RegisterResult{Username: "jiwoo", Err: errors.Join(adapter.ErrConflict, errors.New("409"))})

	assert.False(t, m.submitting)
	assert.Equal(t, "username is already taken", m.errMsg)
}
