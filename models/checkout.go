package models

// CheckoutSelection is the outcome of resolving a catalog id for one request.
// Either Item is set or Error carries the user-facing message.
type CheckoutSelection struct {
	Item  *CatalogItem `json:"item,omitempty"`
	Error string       `json:"error,omitempty"`
}

// PaymentIntentRef holds the gateway identifiers handed back after intent
// creation. It lives only for the request that created it; the gateway
// remains the system of record.
type PaymentIntentRef struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

// PaymentOutcome is a read-only projection of gateway state at retrieval
// time. Amount stays in minor units; views convert to major units once.
// Status is reported exactly as the gateway returned it.
type PaymentOutcome struct {
	IntentID string `json:"intent_id"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}
