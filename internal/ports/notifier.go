package ports

import "github.com/renato0307/hiit/internal/domain"

// Notifier shows the ongoing session status to the user
type Notifier interface {
	Notify(update domain.PresentationUpdate)
}
