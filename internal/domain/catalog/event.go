package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	id       uuid.UUID
	name     string
	startsAt time.Time
	location string
	country  string
	language string
	batches  []*Batch
}

type Batch struct {
	id      uuid.UUID
	eventID uuid.UUID
	tickets []*Ticket
}

func NewEvent(id uuid.UUID, name string, startsAt time.Time, location, country, language string, batches []*Batch) *Event {
	return &Event{
		id:       id,
		name:     name,
		startsAt: startsAt,
		location: location,
		country:  country,
		language: language,
		batches:  batches,
	}
}

func NewBatch(id, eventID uuid.UUID, tickets []*Ticket) *Batch {
	return &Batch{id: id, eventID: eventID, tickets: tickets}
}

func (e *Event) ID() uuid.UUID       { return e.id }
func (e *Event) Name() string        { return e.name }
func (e *Event) StartsAt() time.Time { return e.startsAt }
func (e *Event) Location() string    { return e.location }
func (e *Event) Country() string     { return e.country }
func (e *Event) Language() string    { return e.language }
func (e *Event) Batches() []*Batch   { return e.batches }

func (e *Event) Batch(id uuid.UUID) (*Batch, bool) {
	for _, b := range e.batches {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

func (b *Batch) ID() uuid.UUID       { return b.id }
func (b *Batch) EventID() uuid.UUID  { return b.eventID }
func (b *Batch) Tickets() []*Ticket  { return b.tickets }

func (b *Batch) TicketByCategory(category string) (*Ticket, error) {
	for _, t := range b.tickets {
		if t.category == category {
			return t, nil
		}
	}
	return nil, ErrTicketNotFound
}
