package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/pkg/mail"
)

// ContactConfig controls where contact mail goes and how a missing mail
// credential is treated.
type ContactConfig struct {
	From      string // sender identity, e.g. "Mavi Sigorta <onboarding@resend.dev>"
	Recipient string // inbox that receives submissions
	// Development accepts submissions without sending when the sender has no
	// credentials. In production the same situation is a failure.
	Development bool
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sender mail.Sender
	cfg    ContactConfig
}

// NewContactService creates a ContactService that delivers through sender.
func NewContactService(sender mail.Sender, cfg ContactConfig) ContactService {
	return &contactServiceImpl{sender: sender, cfg: cfg}
}

func (s *contactServiceImpl) Submit(ctx context.Context, sub model.ContactSubmission) model.ContactResult {
	id := uuid.NewString()
	sub = NormalizeSubmission(sub)

	if verr := ValidateSubmission(sub); verr != nil {
		slog.Info("contact: submission rejected", "submission_id", id, "field", verr.Field)
		return model.ContactResult{
			Outcome:      model.OutcomeRejected,
			Field:        verr.Field,
			Message:      verr.Message,
			SubmissionID: id,
		}
	}

	if !s.sender.Configured() {
		if s.cfg.Development {
			slog.Warn("contact: mail sender not configured, submission not sent (dev mode)",
				"submission_id", id,
				"name", sub.Name,
				"email", sub.Email,
				"phone", sub.Phone,
				"course_interest", sub.CourseInterest,
				"message", sub.Message,
			)
			return model.ContactResult{Outcome: model.OutcomeDevSimulated, Message: MsgDevSimulated, SubmissionID: id}
		}
		slog.Error("contact: mail sender not configured", "submission_id", id)
		return model.ContactResult{Outcome: model.OutcomeUnconfigured, Message: MsgUnconfigured, SubmissionID: id}
	}

	html, err := renderContactEmail(sub)
	if err != nil {
		slog.Error("contact: render email failed", "submission_id", id, "error", err)
		return model.ContactResult{Outcome: model.OutcomeDeliveryFailed, Message: MsgDeliveryFailed, SubmissionID: id}
	}

	msg := mail.Message{
		From:    s.cfg.From,
		To:      s.cfg.Recipient,
		ReplyTo: sub.Email,
		Subject: contactSubject(sub.Name),
		HTML:    html,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		slog.Error("contact: send failed", "submission_id", id, "error", err)
		return model.ContactResult{Outcome: model.OutcomeDeliveryFailed, Message: MsgDeliveryFailed, SubmissionID: id}
	}

	slog.Info("contact: submission delivered", "submission_id", id, "recipient", s.cfg.Recipient)
	return model.ContactResult{Outcome: model.OutcomeDelivered, Message: MsgDelivered, SubmissionID: id}
}

func contactSubject(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return "Yeni İletişim Formu - " + name
}

var contactEmailTmpl = template.Must(template.New("contact").Parse(`<h2>Yeni İletişim Formu Mesajı</h2>
<p><strong>Ad Soyad:</strong> {{.Name}}</p>
<p><strong>E-posta:</strong> {{.Email}}</p>
<p><strong>Telefon:</strong> {{.Phone}}</p>
{{- if .CourseInterest}}
<p><strong>İlgilenilen Sigorta:</strong> {{.CourseInterest}}</p>
{{- end}}
<p><strong>Mesaj:</strong></p>
<p>{{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
`))

type contactEmailData struct {
	model.ContactSubmission
	MessageLines []string
}

// renderContactEmail builds the HTML body. All submitted values are escaped;
// message line breaks become <br>.
func renderContactEmail(sub model.ContactSubmission) (string, error) {
	msg := strings.ReplaceAll(sub.Message, "\r\n", "\n")
	data := contactEmailData{
		ContactSubmission: sub,
		MessageLines:      strings.Split(msg, "\n"),
	}
	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute contact template: %w", err)
	}
	return buf.String(), nil
}
