// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MyungJiwoo/career-log/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldCompany = iota
	fieldPosition
	fieldAppliedDate
	fieldStages
	fieldAttachment
	fieldContents
)

var (
	errCompanyRequired  = errors.New("company is required")
	errPositionRequired = errors.New("position is required")
)

var saveKey = key.NewBinding(key.WithKeys("ctrl+s"))

// createForm collects a new application. The last field is a multi-line
// textarea, so enter only submits via ctrl+s.
type createForm struct {
	inputs     []textinput.Model
	contents   textarea.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCreateForm() createForm {
	placeholders := []string{
		"company",
		"position",
		"applied date, YYYY-MM-DD",
		"stages, comma separated (서류, 코딩테스트, 1차 면접)",
		"path to an attachment (optional)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].Width = 50
	}
	inputs[fieldAppliedDate].SetValue(time.Now().Format("2006-01-02"))
	inputs[fieldCompany].Focus()

	contents := textarea.New()
	contents.Placeholder = "notes"
	contents.SetWidth(60)
	contents.SetHeight(4)

	return createForm{inputs: inputs, contents: contents}
}

func (f createForm) Init() tea.Cmd {
	return textinput.Blink
}

// move shifts focus by delta across the inputs and the textarea.
func (f *createForm) move(delta int) {
	total := len(f.inputs) + 1
	f.blur()
	f.focus = (f.focus + delta + total) % total
	if f.focus == fieldContents {
		f.contents.Focus()
		return
	}
	f.inputs[f.focus].Focus()
}

func (f *createForm) blur() {
	if f.focus == fieldContents {
		f.contents.Blur()
		return
	}
	f.inputs[f.focus].Blur()
}

// request validates the form and builds the create request together with the
// attachment path, which is empty when no file is attached.
func (f createForm) request() (models.CreateAppliedJobRequest, string, error) {
	company := strings.TrimSpace(f.inputs[fieldCompany].Value())
	if company == "" {
		return models.CreateAppliedJobRequest{}, "", errCompanyRequired
	}
	position := strings.TrimSpace(f.inputs[fieldPosition].Value())
	if position == "" {
		return models.CreateAppliedJobRequest{}, "", errPositionRequired
	}

	request := models.CreateAppliedJobRequest{
		CompanyName: company,
		Position:    position,
		Contents:    f.contents.Value(),
		Stages:      parseStages(f.inputs[fieldStages].Value()),
	}

	if raw := strings.TrimSpace(f.inputs[fieldAppliedDate].Value()); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return models.CreateAppliedJobRequest{}, "", fmt.Errorf("applied date %q is not YYYY-MM-DD", raw)
		}
		request.AppliedDate = models.NewDate(t)
	}

	return request, strings.TrimSpace(f.inputs[fieldAttachment].Value()), nil
}

func parseStages(raw string) []models.StageInput {
	var stages []models.StageInput
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		stages = append(stages, models.StageInput{Order: len(stages) + 1, Name: name})
	}
	return stages
}

func (m mainLoopModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.create.blur()
			m.screen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create.move(-1)
			return m, nil
		case key.Matches(keyMsg, saveKey):
			return m.submitCreate()
		case key.Matches(keyMsg, keys.enter) && m.create.focus != fieldContents:
			m.create.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.create.focus == fieldContents {
		m.create.contents, cmd = m.create.contents.Update(msg)
	} else {
		m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) submitCreate() (tea.Model, tea.Cmd) {
	if m.create.submitting {
		return m, nil
	}

	request, attachment, err := m.create.request()
	if err != nil {
		m.create.errMsg = err.Error()
		return m, nil
	}

	m.create.errMsg = ""
	m.create.submitting = true
	m.loading = true
	return m, m.cmdCreate(request, attachment)
}

// cmdCreate uploads the attachment first, if any, and creates the application
// with its URL.
func (m mainLoopModel) cmdCreate(request models.CreateAppliedJobRequest, attachment string) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		if attachment != "" {
			file, err := os.Open(attachment)
			if err != nil {
				return jobCreatedMsg{err: fmt.Errorf("open attachment: %w", err)}
			}
			defer file.Close()

			url, err := api.UploadFile(ctx, filepath.Base(attachment), file)
			if err != nil {
				return jobCreatedMsg{err: fmt.Errorf("upload attachment: %w", err)}
			}
			request.FileURLs = append(request.FileURLs, url)
		}

		job, err := api.CreateAppliedJob(ctx, request)
		return jobCreatedMsg{job: job, err: err}
	}
}

func (m mainLoopModel) viewCreate() string {
	f := m.create
	labels := []string{"Company", "Position", "Applied", "Stages", "Attachment"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-11s │ [%s]\n", label, f.inputs[i].View()))
	}
	b.WriteString(fmt.Sprintf("%-11s │\n", "Notes"))
	b.WriteString(f.contents.View())
	b.WriteString("\n")

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		m.header("NEW APPLICATION"),
		strings.TrimRight(b.String(), "\n"),
		"tab/enter: next field │ shift+tab: previous │ ctrl+s: save │ esc: cancel",
	)
}
