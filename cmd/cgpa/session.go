package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cgpa-calculator/internal/form"
	"cgpa-calculator/internal/prompt"
)

var semesters = []string{"3", "4", "5", "6", "7", "8"}

// field is one text input asked for in order.
type field struct {
	id       form.ElementID
	caption  string
	labelID  form.ElementID
	validate func(string) error
}

var fields = []field{
	{id: form.StudentName, caption: "Student name", validate: required},
	{id: form.Roll, caption: "Roll", validate: required},
	{id: form.StudentNumber, caption: "Student number", validate: required},
	{id: form.SGPA1, labelID: form.SGPA1Label, validate: validSGPA},
	{id: form.Credit1, labelID: form.Credit1Label, validate: validCredit},
	{id: form.SGPA2, labelID: form.SGPA2Label, validate: validSGPA},
	{id: form.Credit2, labelID: form.Credit2Label, validate: validCredit},
}

// session drives a form.Controller from terminal prompts.
type session struct {
	driver  prompt.Driver
	surface *form.MemorySurface
	ctrl    *form.Controller
}

func newSession(driver prompt.Driver, calc form.Calculator, opts ...form.Option) *session {
	surface := form.NewMemorySurface()
	opts = append([]form.Option{form.WithConfirmer(driver)}, opts...)
	return &session{
		driver:  driver,
		surface: surface,
		ctrl:    form.NewController(surface, calc, opts...),
	}
}

func (s *session) run(ctx context.Context) error {
	s.ctrl.Init()

	idx, err := s.driver.Select(ctx, prompt.SelectConfig{
		Message: "Current semester",
		Options: semesters,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(semesters) {
		return fmt.Errorf("unknown semester selection %d", idx)
	}
	s.surface.SetValue(form.SemesterSelect, semesters[idx])
	s.ctrl.HandleChange(form.SemesterSelect)

	for _, f := range fields {
		caption := f.caption
		if f.labelID != "" {
			caption = s.surface.Text(f.labelID)
		}

		v, err := s.driver.Input(ctx, prompt.InputConfig{
			Message:   caption,
			Default:   s.surface.Value(f.id),
			Validator: f.validate,
		})
		if err != nil {
			return err
		}

		s.surface.SetValue(f.id, v)
		s.ctrl.HandleInput(f.id)
		s.ctrl.HandleBlur(f.id)
	}

	if s.ctrl.Click(ctx) == form.PhaseBlocked {
		title, _ := s.surface.Attr(form.SubmitButton, "title")
		return s.driver.Info(ctx, title)
	}

	if err := s.driver.Info(ctx, "CGPA: "+s.surface.Text(form.CGPADisplay)); err != nil {
		return err
	}
	if status := s.surface.Text(form.SuccessMessage); status != "" {
		return s.driver.Info(ctx, status)
	}
	return nil
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("this field is required")
	}
	return nil
}

func validSGPA(v string) error {
	if res := form.ValidateSGPA(v); res.Message != "" {
		return errors.New(res.Message)
	}
	return nil
}

func validCredit(v string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
		return errors.New(form.MsgNotANumber)
	}
	if !form.ValidCredit(v) {
		return errors.New(form.MsgCreditAboveRange)
	}
	return nil
}
