package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/plaid/plaid-go/v27/plaid"
	"github.com/shopspring/decimal"

	"exodus/internal/config"
)

// LinkedAccount is the adapter-level view of an aggregator bank account,
// decoupled from the SDK's generated types.
type LinkedAccount struct {
	AccountID           string          `json:"account_id"`
	PersistentAccountID string          `json:"persistent_account_id"`
	Name                string          `json:"name"`
	OfficialName        string          `json:"official_name"`
	Type                string          `json:"type"`
	SubType             string          `json:"sub_type"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
}

// LinkTokenData initializes the consent UI on the client.
type LinkTokenData struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

// TokenExchange is the result of trading a public token for a durable
// access token.
type TokenExchange struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// BankAPI is the slice of the aggregator API this application consumes.
// Constructed once at startup and injected so tests can substitute a fake.
type BankAPI interface {
	CreateLinkToken(ctx context.Context, clientUserID string) (LinkTokenData, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (TokenExchange, error)
	GetAccounts(ctx context.Context, accessToken string) ([]LinkedAccount, error)
	GetBalances(ctx context.Context, accessToken string) ([]LinkedAccount, error)
}

type plaidBank struct {
	client *plaid.APIClient
	cfg    config.PlaidConfig
}

func NewPlaidBank(cfg config.PlaidConfig) BankAPI {
	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	configuration.UseEnvironment(plaidEnvironment(cfg.Environment))

	return &plaidBank{
		client: plaid.NewAPIClient(configuration),
		cfg:    cfg,
	}
}

func plaidEnvironment(name string) plaid.Environment {
	if name == "production" {
		return plaid.Production
	}
	return plaid.Sandbox
}

func (p *plaidBank) CreateLinkToken(ctx context.Context, clientUserID string) (LinkTokenData, error) {
	user := plaid.LinkTokenCreateRequestUser{ClientUserId: clientUserID}
	request := plaid.NewLinkTokenCreateRequest(
		p.cfg.ClientName,
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		user,
	)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_AUTH})
	if p.cfg.RedirectURI != "" {
		request.SetRedirectUri(p.cfg.RedirectURI)
	}

	resp, _, err := p.client.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return LinkTokenData{}, fmt.Errorf("link token create: %w", err)
	}

	return LinkTokenData{
		LinkToken:  resp.GetLinkToken(),
		Expiration: resp.GetExpiration(),
		RequestID:  resp.GetRequestId(),
	}, nil
}

func (p *plaidBank) ExchangePublicToken(ctx context.Context, publicToken string) (TokenExchange, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, _, err := p.client.PlaidApi.ItemPublicTokenExchange(ctx).
		ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return TokenExchange{}, fmt.Errorf("public token exchange: %w", err)
	}

	return TokenExchange{
		AccessToken: resp.GetAccessToken(),
		ItemID:      resp.GetItemId(),
	}, nil
}

func (p *plaidBank) GetAccounts(ctx context.Context, accessToken string) ([]LinkedAccount, error) {
	request := plaid.NewAccountsGetRequest(accessToken)
	resp, _, err := p.client.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, fmt.Errorf("accounts get: %w", err)
	}
	return convertAccounts(resp.GetAccounts()), nil
}

func (p *plaidBank) GetBalances(ctx context.Context, accessToken string) ([]LinkedAccount, error) {
	request := plaid.NewAccountsBalanceGetRequest(accessToken)
	resp, _, err := p.client.PlaidApi.AccountsBalanceGet(ctx).
		AccountsBalanceGetRequest(*request).Execute()
	if err != nil {
		return nil, fmt.Errorf("balance get: %w", err)
	}
	return convertAccounts(resp.GetAccounts()), nil
}

func convertAccounts(accounts []plaid.AccountBase) []LinkedAccount {
	out := make([]LinkedAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, LinkedAccount{
			AccountID:           a.GetAccountId(),
			PersistentAccountID: a.GetPersistentAccountId(),
			Name:                a.GetName(),
			OfficialName:        a.GetOfficialName(),
			Type:                string(a.GetType()),
			SubType:             string(a.GetSubtype()),
			CurrentBalance:      decimal.NewFromFloat(a.GetBalances().GetCurrent()),
		})
	}
	return out
}
