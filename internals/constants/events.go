package constants

// Eventos de webhook suportados
const (
	WebhookEventNewContact = "new_contact"
	WebhookEventBirthday   = "birthday"
)

var WebhookEvents = []string{
	WebhookEventNewContact,
	WebhookEventBirthday,
}

// Status de ciclo de vida de um contato
const (
	ContactStatusPending  = "pending"
	ContactStatusAssigned = "assigned"
	ContactStatusMember   = "member"
	ContactStatusActive   = "active"
	ContactStatusVisitor  = "visitor"
)

var ContactStatuses = []string{
	ContactStatusPending,
	ContactStatusAssigned,
	ContactStatusMember,
	ContactStatusActive,
	ContactStatusVisitor,
}
