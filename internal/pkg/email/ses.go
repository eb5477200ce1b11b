package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SESClient is the part of *ses.Client the transport needs.
type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesTransport struct {
	client SESClient
	sender string
}

func NewSESTransport(client SESClient, sender string) Transport {
	return &sesTransport{client: client, sender: sender}
}

func (s *sesTransport) Send(ctx context.Context, msg Message) error {
	tracer := otel.Tracer("ses-email-transport")
	ctx, span := tracer.Start(ctx, "send_email", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(attribute.String("email.subject", msg.Subject))

	body := &types.Body{
		Text: &types.Content{
			Data: aws.String(msg.Text),
		},
	}
	if msg.HTML != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTML),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(msg.Subject),
			},
			Body: body,
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ses send failed")
	}
	return err
}
