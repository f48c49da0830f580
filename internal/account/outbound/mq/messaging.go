package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/goident/internal/account/usecase"
	"github.com/shandysiswandi/goident/internal/pkg/instrument"
	"github.com/shandysiswandi/goident/internal/pkg/messaging"
	"github.com/shandysiswandi/goident/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishAccountRegistration(ctx context.Context, msg usecase.AccountRegistrationEvent) error {
	ctx, span := m.ins.Tracer("account.outbound.mq").Start(ctx, "PublishAccountRegistration")
	defer span.End()

	body, err := json.Marshal(event.AccountRegistrationMessage{
		AccountID: msg.AccountID,
		PublicID:  msg.PublicID,
		UserName:  msg.UserName,
		Email:     msg.Email,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.AccountRegistrationDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
