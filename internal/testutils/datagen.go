package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ticket is the resource used throughout the tests and the demo. Any
// json-decodable type works with the controller - tickets just make the
// fixtures readable.
type Ticket struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

func MakeTickets(numTickets int) ([]Ticket, error) {

	statuses := []string{"open", "closed", "blocked"}
	tickets := make([]Ticket, 0, numTickets)

	for i := range numTickets {
		id, err := uuid.NewV7()

		if err != nil {
			return tickets, err
		}

		ticket := Ticket{
			Id:        id.String(),
			Title:     fmt.Sprintf("Test Ticket %d", i),
			Status:    statuses[i%len(statuses)],
			CreatedBy: "tester",
			CreatedAt: time.Now().Format(time.RFC3339Nano),
		}

		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func MakeTicketPayload(title, status string) json.RawMessage {

	payload, _ := json.Marshal(map[string]string{
		"title":     title,
		"status":    status,
		"createdBy": "tester",
	})

	return payload
}

func MarshalAll[T any](items []T) ([]json.RawMessage, error) {

	marshalled := make([]json.RawMessage, 0, len(items))

	for _, item := range items {
		body, err := json.Marshal(item)

		if err != nil {
			return nil, fmt.Errorf("failed to marshal item - %w", err)
		}

		marshalled = append(marshalled, body)
	}

	return marshalled, nil
}
