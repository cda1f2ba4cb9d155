package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditly-backend/internal/models"
)

type stubGateway struct {
	calls       int
	reply       string
	err         error
	lastSystem  string
	lastUser    string
	lastHistory []models.ChatMessage
}

func (g *stubGateway) Call(_ context.Context, system, user string, history []models.ChatMessage) (string, error) {
	g.calls++
	g.lastSystem = system
	g.lastUser = user
	g.lastHistory = history
	return g.reply, g.err
}

type stubContexts struct {
	rc      *models.ReportContext
	rcErr   error
	summary string
}

func (c *stubContexts) BuildReportContext(_ context.Context, _ string) (*models.ReportContext, error) {
	return c.rc, c.rcErr
}

func (c *stubContexts) BuildReportSummary(_ context.Context, _ string) string {
	return c.summary
}

func TestChat_ReportIntentWithoutReportNeverCallsGateway(t *testing.T) {
	gw := &stubGateway{reply: "should not be used"}
	svc := NewChatService(&stubContexts{}, gw)

	res := svc.Chat(context.Background(), "", "Why is my score low?", nil)

	assert.Equal(t, models.ReportIntent, res.Intent)
	assert.Equal(t, noReportReply, res.Reply)
	assert.Equal(t, []string{}, res.Sources)
	assert.Equal(t, 0, gw.calls, "gateway must not be invoked without a report id")
}

func TestChat_ReportFlow(t *testing.T) {
	gw := &stubGateway{reply: "your LCP is slow because of image weight"}
	contexts := &stubContexts{rc: &models.ReportContext{
		FullContext: "## OVERVIEW\nURL: https://example.com",
		URL:         "https://example.com",
	}}
	svc := NewChatService(contexts, gw)

	res := svc.Chat(context.Background(), "11111111-2222-3333-4444-555555555555",
		"my images are missing alt text and LCP is slow", nil)

	require.Equal(t, 1, gw.calls)
	assert.Equal(t, models.ReportIntent, res.Intent)
	assert.Equal(t, gw.reply, res.Reply)
	assert.Contains(t, res.Sources, "performance")
	assert.Contains(t, res.Sources, "seo")
	assert.Contains(t, gw.lastUser, "## OVERVIEW", "full context must reach the model")
	assert.Contains(t, gw.lastSystem, "Mode: report analysis")
}

func TestChat_SourcesFallBackToOverview(t *testing.T) {
	gw := &stubGateway{reply: "looks fine overall"}
	contexts := &stubContexts{rc: &models.ReportContext{FullContext: "ctx"}}
	svc := NewChatService(contexts, gw)

	res := svc.Chat(context.Background(), "11111111-2222-3333-4444-555555555555",
		"what do you think about my report?", nil)

	assert.Equal(t, models.ReportIntent, res.Intent)
	assert.Equal(t, []string{"overview"}, res.Sources)
}

func TestChat_HistoryCappedAtTenMostRecent(t *testing.T) {
	gw := &stubGateway{reply: "hi"}
	svc := NewChatService(&stubContexts{}, gw)

	history := make([]models.ChatMessage, 25)
	for i := range history {
		history[i] = models.ChatMessage{Role: "user", Text: fmt.Sprintf("turn %d", i)}
	}

	svc.Chat(context.Background(), "", "hii", history)

	require.Equal(t, 1, gw.calls)
	require.Len(t, gw.lastHistory, 10)
	assert.Equal(t, "turn 15", gw.lastHistory[0].Text)
	assert.Equal(t, "turn 24", gw.lastHistory[9].Text, "most recent turn must be last")
}

func TestChat_ContextFetchFailureBecomesApology(t *testing.T) {
	gw := &stubGateway{reply: "unused"}
	contexts := &stubContexts{rcErr: models.ErrReportNotFound}
	svc := NewChatService(contexts, gw)

	res := svc.Chat(context.Background(), "11111111-2222-3333-4444-555555555555",
		"why is my score low?", nil)

	assert.Equal(t, apologyReply, res.Reply)
	assert.Equal(t, models.ReportIntent, res.Intent, "detected intent is preserved on failure")
	assert.Equal(t, []string{}, res.Sources)
	assert.Equal(t, 0, gw.calls)
}

func TestChat_GatewayFailureBecomesApology(t *testing.T) {
	gw := &stubGateway{err: errors.New("vendor exploded")}
	svc := NewChatService(&stubContexts{}, gw)

	res := svc.Chat(context.Background(), "", "hii", nil)

	assert.Equal(t, apologyReply, res.Reply)
	assert.Equal(t, models.GeneralIntent, res.Intent)
	assert.Equal(t, []string{}, res.Sources)
}

func TestChat_NoGatewayConfigured(t *testing.T) {
	svc := NewChatService(&stubContexts{}, nil)

	res := svc.Chat(context.Background(), "", "hello", nil)

	assert.Equal(t, models.ErrorIntent, res.Intent)
	assert.Equal(t, notConfiguredReply, res.Reply)
	assert.Equal(t, []string{}, res.Sources)
}

func TestChat_ConceptIntentCarriesSummaryWhenReportLoaded(t *testing.T) {
	gw := &stubGateway{reply: "LCP measures render time of the largest element"}
	contexts := &stubContexts{summary: "URL: https://example.com\nHealth Score: 72/100 (Grade B)"}
	svc := NewChatService(contexts, gw)

	res := svc.Chat(context.Background(), "11111111-2222-3333-4444-555555555555",
		"What is largest contentful paint?", nil)

	assert.Equal(t, models.ConceptIntent, res.Intent)
	assert.Contains(t, gw.lastUser, "Health Score: 72/100")
	assert.True(t, strings.HasSuffix(gw.lastUser, "What is largest contentful paint?"))
	assert.Contains(t, gw.lastSystem, "Mode: concept explainer")
}

func TestTranslateVendorError(t *testing.T) {
	reply, ok := translateVendorError(errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."))
	assert.True(t, ok)
	assert.Equal(t, credentialErrorReply, reply)

	reply, ok = translateVendorError(errors.New("googleapi: Error 429: Resource exhausted, please try again later"))
	assert.True(t, ok)
	assert.Equal(t, rateLimitReply, reply)

	_, ok = translateVendorError(errors.New("connection reset by peer"))
	assert.False(t, ok)
}
