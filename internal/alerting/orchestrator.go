// Package alerting coordinates alert dispatch: contact resolution, message
// formatting, dual-channel delivery, and offline queuing.
package alerting

import (
	"context"
	"log/slog"
	"time"

	"github.com/glofwatch/glof-alerts/internal/directory"
	"github.com/glofwatch/glof-alerts/internal/email"
	"github.com/glofwatch/glof-alerts/internal/message"
	"github.com/glofwatch/glof-alerts/internal/models"
	"github.com/glofwatch/glof-alerts/internal/offline"
	"github.com/glofwatch/glof-alerts/internal/sms"
)

type SMSSender interface {
	Send(ctx context.Context, phoneNumbers []string, message string) sms.Result
}

type EmailSender interface {
	Send(recipients []string, lakeName, message string) email.Result
}

type Connectivity interface {
	Online() bool
}

type Orchestrator struct {
	dir     *directory.Directory
	sms     SMSSender
	email   EmailSender // nil when SMTP is not configured
	monitor Connectivity
	queue   *offline.Queue
	now     func() time.Time
}

func New(dir *directory.Directory, smsSender SMSSender, emailSender EmailSender, monitor Connectivity, queue *offline.Queue) *Orchestrator {
	return &Orchestrator{
		dir:     dir,
		sms:     smsSender,
		email:   emailSender,
		monitor: monitor,
		queue:   queue,
		now:     time.Now,
	}
}

// SendAlert dispatches a GLOF alert for the given lake. The returned bool is
// the overall outcome the web layer reports; the Alert carries the detailed
// status for richer callers. A nil Alert means no matching contacts existed
// and nothing was dispatched.
//
// Queuing while offline counts as success: the caller is told delivery is
// pending, not lost.
func (o *Orchestrator) SendAlert(ctx context.Context, lakeName string, level models.RiskLevel, extraInfo string, roles []models.Role) (*models.Alert, bool) {
	contacts := o.dir.ContactsFor(lakeName, roles)
	if len(contacts) == 0 {
		slog.Warn("no contacts found for glacial lake", "lake", lakeName, "risk", level)
		return nil, false
	}

	now := o.now()
	timestamp := message.Timestamp(now)
	body := message.FormatAlert(lakeName, level, timestamp, extraInfo)

	ids := make([]string, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}

	alert := &models.Alert{
		ID:          models.NewAlertID(lakeName, now),
		GlacialLake: lakeName,
		RiskLevel:   level,
		Timestamp:   timestamp,
		Message:     body,
		ContactIDs:  ids,
		Status:      models.AlertPending,
		CreatedAt:   now,
	}
	if extraInfo != "" {
		alert.Extra = map[string]string{"additional_info": extraInfo}
	}

	ok := o.dispatch(ctx, alert, contacts)

	names := contactNames(contacts)
	if ok {
		slog.Info("GLOF alert dispatched", "lake", lakeName, "risk", level, "status", alert.Status, "recipients", names)
	} else {
		slog.Error("GLOF alert failed", "lake", lakeName, "risk", level, "recipients", names)
	}
	return alert, ok
}

// dispatch runs the delivery state machine: SMS is always attempted first; a
// failed SMS while the connectivity flag is down queues the alert; email is
// attempted only when configured, addressed, and online. Overall success is
// the OR of the two channels.
func (o *Orchestrator) dispatch(ctx context.Context, alert *models.Alert, contacts []models.Contact) bool {
	phones, emails := addresses(contacts)

	smsOK := false
	if len(phones) > 0 {
		res := o.sms.Send(ctx, phones, alert.Message)
		smsOK = res.OK

		if !smsOK {
			slog.Error("SMS channel failed", "lake", alert.GlacialLake, "risk", alert.RiskLevel, "detail", res.Detail)
			if !o.monitor.Online() {
				alert.Status = models.AlertOfflineQueued
				o.queue.Enqueue(alert)
				return true
			}
		}
	}

	emailOK := false
	if o.email != nil && len(emails) > 0 && o.monitor.Online() {
		res := o.email.Send(emails, alert.GlacialLake, alert.Message)
		emailOK = res.OK
		if !emailOK {
			slog.Error("email channel failed", "lake", alert.GlacialLake, "risk", alert.RiskLevel, "failed_recipients", res.Failed)
		}
	}

	if smsOK || emailOK {
		alert.Status = models.AlertSent
		sentAt := o.now()
		alert.SentAt = &sentAt
		return true
	}

	alert.Status = models.AlertFailed
	return false
}

// SendAllClear notifies contacts that the threat for a lake has passed. It
// follows the same contact-resolution and dual-channel flow as SendAlert but
// allocates no tracked alert record and never queues.
func (o *Orchestrator) SendAllClear(ctx context.Context, lakeName string, roles []models.Role) bool {
	contacts := o.dir.ContactsFor(lakeName, roles)
	if len(contacts) == 0 {
		slog.Warn("no contacts found for glacial lake", "lake", lakeName)
		return false
	}

	body := message.FormatAllClear(lakeName, message.Timestamp(o.now()))
	phones, emails := addresses(contacts)

	smsOK := false
	if len(phones) > 0 {
		smsOK = o.sms.Send(ctx, phones, body).OK
	}

	emailOK := false
	if o.email != nil && len(emails) > 0 && o.monitor.Online() {
		emailOK = o.email.Send(emails, lakeName, body).OK
	}

	ok := smsOK || emailOK
	if ok {
		slog.Info("all-clear sent", "lake", lakeName, "recipients", contactNames(contacts))
	} else {
		slog.Error("all-clear failed", "lake", lakeName)
	}
	return ok
}

// ReplayQueued drains the offline queue and re-attempts delivery of each
// alert to its originally resolved contacts. Alerts that fail again while
// offline go back on the queue; alerts that fail while online are marked
// FAILED and dropped. Returns how many were delivered and how many remain
// queued. Never invoked automatically; an external caller must trigger it.
func (o *Orchestrator) ReplayQueued(ctx context.Context) (delivered, requeued int) {
	drained := o.queue.DrainAll()
	if len(drained) == 0 {
		return 0, 0
	}

	slog.Info("replaying queued alerts", "count", len(drained))

	for _, alert := range drained {
		contacts := o.contactsByID(alert.ContactIDs)
		alert.RetryCount++

		if o.dispatch(ctx, alert, contacts) {
			if alert.Status == models.AlertOfflineQueued {
				// dispatch re-enqueued it; still undelivered
				requeued++
				continue
			}
			delivered++
			slog.Info("queued alert delivered", "id", alert.ID, "lake", alert.GlacialLake, "retries", alert.RetryCount)
		} else {
			slog.Error("queued alert failed permanently", "id", alert.ID, "lake", alert.GlacialLake)
		}
	}

	return delivered, requeued
}

// Contacts exposes the active contact list for the dashboard.
func (o *Orchestrator) Contacts() []models.Contact {
	return o.dir.All()
}

// QueuedCount reports how many alerts are waiting in the offline queue.
func (o *Orchestrator) QueuedCount() int {
	return o.queue.Len()
}

func (o *Orchestrator) contactsByID(ids []string) []models.Contact {
	contacts := make([]models.Contact, 0, len(ids))
	for _, id := range ids {
		if c := o.dir.ByID(id); c != nil {
			contacts = append(contacts, *c)
		}
	}
	return contacts
}

func addresses(contacts []models.Contact) (phones, emails []string) {
	for _, c := range contacts {
		if c.Phone != "" {
			phones = append(phones, c.Phone)
		}
		if c.Email != "" {
			emails = append(emails, c.Email)
		}
	}
	return phones, emails
}

func contactNames(contacts []models.Contact) []string {
	names := make([]string, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	return names
}
