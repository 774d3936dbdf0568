package vnpay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/localshop/storefront/internal/application/payment/paymentgateway"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

const (
	txnRefPrefix       = "ORDER_"
	txnRefSuffixLength = 6
	orderInfoMaxLength = 255
)

// ErrInvalidRequest is returned before any signing when a payment request is
// missing a field the gateway requires.
var ErrInvalidRequest = errors.New("invalid payment request")

// Config is the merchant configuration, resolved once at startup.
type Config struct {
	TmnCode    string
	HashSecret string
	PaymentURL string
	ReturnURL  string
	Version    string
	Locale     string
	OrderType  string
}

func (c Config) Validate() error {
	var missing []string
	if c.TmnCode == "" {
		missing = append(missing, "tmn_code")
	}
	if c.HashSecret == "" {
		missing = append(missing, "hash_secret")
	}
	if c.PaymentURL == "" {
		missing = append(missing, "url")
	}
	if c.ReturnURL == "" {
		missing = append(missing, "return_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("vnpay config missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Gateway implements paymentgateway.PaymentGateway for VNPay.
type Gateway struct {
	config    Config
	signer    *Signer
	logger    logger.Interface
	now       func() time.Time
	newTxnRef func(now time.Time) (string, error)
}

type Option func(*Gateway)

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.now = now
	}
}

func WithTxnRefGenerator(fn func(now time.Time) (string, error)) Option {
	return func(g *Gateway) {
		g.newTxnRef = fn
	}
}

func NewGateway(config Config, log logger.Interface, opts ...Option) (*Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Version == "" {
		config.Version = "2.1.0"
	}
	if config.Locale == "" {
		config.Locale = "vn"
	}
	if config.OrderType == "" {
		config.OrderType = "other"
	}

	g := &Gateway{
		config:    config,
		signer:    NewSigner(config.HashSecret),
		logger:    log,
		now:       biztime.NowUTC,
		newTxnRef: NewTxnRef,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewTxnRef returns ORDER_<unix millis>_<6 random base62 chars>.
func NewTxnRef(now time.Time) (string, error) {
	suffix, err := id.Generate(txnRefSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d_%s", txnRefPrefix, now.UnixMilli(), suffix), nil
}

// BuildPaymentURL signs params and returns the redirect URL. The query string
// is the canonical string itself with vnp_SecureHash appended last.
func (g *Gateway) BuildPaymentURL(params RequestParams) (string, error) {
	if params.TxnRef == "" {
		return "", fmt.Errorf("transaction reference is required: %w", ErrInvalidRequest)
	}
	if params.Amount <= 0 {
		return "", fmt.Errorf("amount must be positive: %w", ErrInvalidRequest)
	}
	if params.CreateDate.IsZero() {
		return "", fmt.Errorf("create date is required: %w", ErrInvalidRequest)
	}

	canonical := Canonicalize(params.Pairs())
	signature := g.signer.Sign(canonical)

	return g.config.PaymentURL + "?" + canonical + "&" + ParamSecureHash + "=" + signature, nil
}

func (g *Gateway) CreatePayment(ctx context.Context, req paymentgateway.CreatePaymentRequest) (*paymentgateway.CreatePaymentResponse, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("order ID is required: %w", ErrInvalidRequest)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidRequest)
	}

	now := g.now()
	txnRef, err := g.newTxnRef(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction reference: %w", err)
	}

	orderInfo := utils.ToPlainASCII(req.OrderInfo, orderInfoMaxLength)
	if orderInfo == "" {
		orderInfo = "Thanh toan don hang " + req.OrderID
	}
	ipAddr := req.ClientIP
	if ipAddr == "" {
		ipAddr = defaultIPAddr
	}

	params := RequestParams{
		Version:    g.config.Version,
		Command:    CommandPay,
		TmnCode:    g.config.TmnCode,
		Locale:     g.config.Locale,
		CurrCode:   CurrencyVND,
		TxnRef:     txnRef,
		OrderInfo:  orderInfo,
		OrderType:  g.config.OrderType,
		Amount:     req.Amount.ScaledAmount(),
		ReturnURL:  g.config.ReturnURL,
		IPAddr:     ipAddr,
		CreateDate: now,
		ExpireDate: req.ExpireAt,
	}

	paymentURL, err := g.BuildPaymentURL(params)
	if err != nil {
		return nil, err
	}

	g.logger.Debugw("vnpay payment url built",
		"order_id", req.OrderID,
		"txn_ref", txnRef,
		"amount", params.Amount,
	)

	return &paymentgateway.CreatePaymentResponse{
		TxnRef:       txnRef,
		PaymentURL:   paymentURL,
		ScaledAmount: params.Amount,
		CreatedAt:    now,
	}, nil
}

func (g *Gateway) VerifyCallback(values url.Values) (*paymentgateway.CallbackData, error) {
	pairs := PairsFromValues(values)
	txnRef := values.Get(ParamTxnRef)

	if !g.signer.Verify(pairs) {
		g.logger.Warnw("vnpay callback signature rejected", "txn_ref", txnRef)
		return nil, paymentgateway.ErrInvalidSignature
	}

	if txnRef == "" {
		return nil, fmt.Errorf("missing %s: %w", ParamTxnRef, paymentgateway.ErrMalformedCallback)
	}
	responseCode := values.Get(ParamResponseCode)
	if responseCode == "" {
		return nil, fmt.Errorf("missing %s: %w", ParamResponseCode, paymentgateway.ErrMalformedCallback)
	}
	amount, err := strconv.ParseInt(values.Get(ParamAmount), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ParamAmount, paymentgateway.ErrMalformedCallback)
	}

	paidAt := g.now()
	if raw := values.Get(ParamPayDate); raw != "" {
		if parsed, err := ParseDate(raw); err == nil {
			paidAt = parsed.UTC()
		} else {
			g.logger.Warnw("unparseable vnpay pay date", "txn_ref", txnRef, "pay_date", raw)
		}
	}

	raw := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if isSignatureField(p.Key) {
			continue
		}
		raw[p.Key] = p.Value
	}

	return &paymentgateway.CallbackData{
		TxnRef:            txnRef,
		TransactionNo:     values.Get(ParamTransactionNo),
		Amount:            amount,
		ResponseCode:      responseCode,
		TransactionStatus: values.Get(ParamTransactionStatus),
		BankCode:          values.Get(ParamBankCode),
		PaidAt:            paidAt,
		Message:           ResponseMessage(responseCode),
		RawData:           raw,
	}, nil
}

var _ paymentgateway.PaymentGateway = (*Gateway)(nil)
