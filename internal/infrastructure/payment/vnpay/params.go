package vnpay

import (
	"net/url"
	"strconv"
	"time"
)

// Field names of the VNPay 2.1.0 contract.
const (
	ParamVersion           = "vnp_Version"
	ParamCommand           = "vnp_Command"
	ParamTmnCode           = "vnp_TmnCode"
	ParamLocale            = "vnp_Locale"
	ParamCurrCode          = "vnp_CurrCode"
	ParamTxnRef            = "vnp_TxnRef"
	ParamOrderInfo         = "vnp_OrderInfo"
	ParamOrderType         = "vnp_OrderType"
	ParamAmount            = "vnp_Amount"
	ParamReturnURL         = "vnp_ReturnUrl"
	ParamIPAddr            = "vnp_IpAddr"
	ParamCreateDate        = "vnp_CreateDate"
	ParamExpireDate        = "vnp_ExpireDate"
	ParamBankCode          = "vnp_BankCode"
	ParamResponseCode      = "vnp_ResponseCode"
	ParamTransactionNo     = "vnp_TransactionNo"
	ParamTransactionStatus = "vnp_TransactionStatus"
	ParamPayDate           = "vnp_PayDate"
	ParamSecureHash        = "vnp_SecureHash"
	ParamSecureHashType    = "vnp_SecureHashType"
)

const (
	CommandPay    = "pay"
	CurrencyVND   = "VND"
	dateLayout    = "20060102150405"
	defaultIPAddr = "127.0.0.1"
)

// gatewayZone is the fixed offset VNPay expects for every timestamp.
var gatewayZone = time.FixedZone("GMT+7", 7*60*60)

// Pair is one name/value field. A Pair with an empty Value is still signed;
// a field that is absent has no Pair at all.
type Pair struct {
	Key   string
	Value string
}

// RequestParams is the outbound payment request before signing.
// Amount is already scaled (x100).
type RequestParams struct {
	Version    string
	Command    string
	TmnCode    string
	Locale     string
	CurrCode   string
	TxnRef     string
	OrderInfo  string
	OrderType  string
	Amount     int64
	ReturnURL  string
	IPAddr     string
	CreateDate time.Time
	ExpireDate time.Time
	BankCode   string
}

// Pairs lists the request fields. Required fields are always present,
// optional ones only when set.
func (p RequestParams) Pairs() []Pair {
	pairs := []Pair{
		{ParamVersion, p.Version},
		{ParamCommand, p.Command},
		{ParamTmnCode, p.TmnCode},
		{ParamLocale, p.Locale},
		{ParamCurrCode, p.CurrCode},
		{ParamTxnRef, p.TxnRef},
		{ParamOrderInfo, p.OrderInfo},
		{ParamOrderType, p.OrderType},
		{ParamAmount, strconv.FormatInt(p.Amount, 10)},
		{ParamReturnURL, p.ReturnURL},
		{ParamCreateDate, FormatDate(p.CreateDate)},
	}
	if p.IPAddr != "" {
		pairs = append(pairs, Pair{ParamIPAddr, p.IPAddr})
	}
	if !p.ExpireDate.IsZero() {
		pairs = append(pairs, Pair{ParamExpireDate, FormatDate(p.ExpireDate)})
	}
	if p.BankCode != "" {
		pairs = append(pairs, Pair{ParamBankCode, p.BankCode})
	}
	return pairs
}

// PairsFromValues converts callback query values to pairs, keeping the
// first value of a repeated key.
func PairsFromValues(values url.Values) []Pair {
	pairs := make([]Pair, 0, len(values))
	for key, vals := range values {
		value := ""
		if len(vals) > 0 {
			value = vals[0]
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs
}

func FormatDate(t time.Time) string {
	return t.In(gatewayZone).Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, gatewayZone)
}
