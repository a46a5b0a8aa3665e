package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	// Session lifecycle states. NEW exists only between creation and the
	// first committed exchange.
	SessionStateNew      = "new"
	SessionStateActive   = "active"
	SessionStateArchived = "archived"

	// Degradation error codes surfaced on the response when the generation
	// collaborator failed. Rate limiting gets its own code so clients can
	// back off.
	ErrorCodeModelUnavailable = "MODEL_UNAVAILABLE"
	ErrorCodeModelTimeout     = "MODEL_TIMEOUT"
	ErrorCodeModelRateLimited = "MODEL_RATE_LIMITED"

	// Exchange event subject published to NATS after every commit.
	ExchangeCommittedSubject = "legalaid.exchange.committed"
)

// Legal question categories. The classifier only ever returns one of these.
const (
	CategoryConstitutional = "constitutional"
	CategoryCriminal       = "criminal"
	CategoryCivil          = "civil"
	CategoryConsumer       = "consumer"
	CategoryCorporate      = "corporate"
	CategoryFamily         = "family"
	CategoryProperty       = "property"
	CategoryLabour         = "labour"
	CategoryGeneral        = "general"
)

const (
	// SystemPromptV1 carries the mandatory instructions: jurisdiction scope,
	// citation requirement and refusal policy. The prompt builder never
	// truncates this block.
	SystemPromptV1 = `You are an AI assistant specializing in Indian law. Answer questions about Indian legal matters using ONLY the numbered reference excerpts provided below.

RULES:
1. Base your answer strictly on the provided excerpts. Cite them inline with bracketed markers like [1] or [2].
2. Quote the exact act, section or article when it appears in an excerpt.
3. If the excerpts do not cover the question, say so clearly and do not invent provisions.
4. Refuse questions outside Indian law or requests for advice on committing illegal acts.
5. Keep the answer clear and accessible to non-lawyers.
6. Never provide direct legal advice; close with a short educational-purpose disclaimer.`

	// NoSourcesPreambleV1 opens the prompt when retrieval returned nothing,
	// so the model answers generically instead of hallucinating citations.
	NoSourcesPreambleV1 = `No reference excerpts matched this question. Answer from general knowledge of Indian law, state that no specific sources were found, and do not use citation markers.`

	// FallbackAnswerV1 is the fixed degraded answer persisted when the
	// generation collaborator is unavailable or times out.
	FallbackAnswerV1 = `I apologize, but I could not generate an answer to your question right now. Please try again in a moment.

In the meantime, you can consult official resources such as the India Code portal (www.indiacode.nic.in) or the Supreme Court of India website (sci.gov.in).

**Legal Disclaimer:** This service provides information for educational purposes only and does not constitute legal advice.`

	// DisclaimerV1 is appended to generated answers that do not already
	// carry a disclaimer.
	DisclaimerV1 = `

**Legal Disclaimer:** This information is for educational purposes only and does not constitute legal advice. Please consult a qualified legal professional for specific legal matters.`
)
