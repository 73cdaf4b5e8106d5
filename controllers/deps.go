package controllers

import (
	"gloryland/checkout"
	"gloryland/mail"
	"gloryland/metrics"
	"gloryland/notify"
	"gloryland/storage"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Deps are the collaborators handlers need beyond their collections.
// main wires them once at startup.
type Deps struct {
	Finalizer    *checkout.Finalizer
	Metrics      *metrics.Registry
	Publisher    notify.Publisher
	Hub          *notify.Hub
	Mailer       mail.Mailer
	Blobs        *storage.DiskStore
	ContactEmail string
}

var deps Deps

func Init(d Deps) {
	deps = d
}
