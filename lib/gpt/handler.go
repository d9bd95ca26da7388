package gpt

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"fairhire-backend/config"
	yagptclient "fairhire-backend/lib/gpt/yagpt-client"
)

const descriptionPrompt = "You are a recruiter writing job postings. " +
	"Write a clear, inclusive job offer description. Do not mention age, " +
	"gender, nationality or any other protected attribute."

type Provider interface {
	GenerateOfferDescription(ctx context.Context, title, position string) (description string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) GenerateOfferDescription(ctx context.Context, title, position string) (string, error) {
	text := fmt.Sprintf("Generate a description for the job offer %q", title)
	if position != "" {
		text = fmt.Sprintf("%s (position: %s)", text, position)
	}
	description, err := i.client.GenerateByPromptAndText(ctx, descriptionPrompt, text)
	if err != nil {
		log.
			WithField("title", title).
			WithError(err).
			Error("offer description generation error")
		return "", err
	}
	return description, nil
}
