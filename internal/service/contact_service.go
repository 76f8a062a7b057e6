package service

import (
	"context"

	"github.com/mavisigorta/backend/internal/model"
)

// Caller-facing messages. Internal error detail never goes into these.
const (
	MsgDelivered       = "Mesajınız başarıyla gönderildi"
	MsgDevSimulated    = "Mesajınız alındı (dev mode)"
	MsgUnconfigured    = "Email servis konfigüre edilmemiş"
	MsgDeliveryFailed  = "E-posta gönderilirken bir hata oluştu"
	MsgMalformed       = "Bir hata oluştu, lütfen daha sonra tekrar deneyiniz"
	MsgNameRequired    = "Ad soyad alanı zorunludur"
	MsgEmailRequired   = "E-posta alanı zorunludur"
	MsgEmailInvalid    = "Geçerli bir e-posta adresi giriniz"
	MsgPhoneRequired   = "Telefon alanı zorunludur"
	MsgMessageRequired = "Mesaj alanı zorunludur"
)

// ContactService runs one contact form submission through validation and
// delivery. Submit never returns an error; the outcome is in the result.
type ContactService interface {
	Submit(ctx context.Context, sub model.ContactSubmission) model.ContactResult
}

// MalformedResult is the result for a request body that could not be decoded.
func MalformedResult() model.ContactResult {
	return model.ContactResult{Outcome: model.OutcomeMalformed, Message: MsgMalformed}
}
