package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	VNPaySuccessCode = "00"
	vnpDateLayout    = "20060102150405"
)

type PaymentRequest struct {
	OrderID     uuid.UUID
	Amount      decimal.Decimal
	Description string
	ClientIP    string
	CreatedAt   time.Time
}

type VNPayConfig struct {
	TmnCode     string
	HashSecret  string
	PayURL      string
	ReturnURL   string
	ExpireAfter time.Duration
}

// VNPayGateway signs outgoing payment redirects and verifies the return callback
// with HMAC-SHA512 over the sorted, query-escaped vnp_ parameters.
type VNPayGateway struct {
	cfg      VNPayConfig
	location *time.Location
}

func NewVNPayGateway(cfg VNPayConfig) *VNPayGateway {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.FixedZone("ICT", 7*60*60)
	}
	if cfg.ExpireAfter <= 0 {
		cfg.ExpireAfter = 15 * time.Minute
	}
	return &VNPayGateway{cfg: cfg, location: loc}
}

// AmountInMinorUnits is the integer form the gateway exchanges: the total times 100, truncated.
func AmountInMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

func (g *VNPayGateway) BuildPaymentURL(req PaymentRequest) string {
	created := req.CreatedAt.In(g.location)
	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = "127.0.0.1"
	}

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", g.cfg.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(AmountInMinorUnits(req.Amount), 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", req.OrderID.String())
	params.Set("vnp_OrderInfo", req.Description)
	params.Set("vnp_OrderType", "billpayment")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_ReturnUrl", g.cfg.ReturnURL)
	params.Set("vnp_IpAddr", clientIP)
	params.Set("vnp_CreateDate", created.Format(vnpDateLayout))
	params.Set("vnp_ExpireDate", created.Add(g.cfg.ExpireAfter).Format(vnpDateLayout))

	query := params.Encode()
	return g.cfg.PayURL + "?" + query + "&vnp_SecureHash=" + g.Sign(query)
}

func (g *VNPayGateway) VerifyCallback(params url.Values) bool {
	received := params.Get("vnp_SecureHash")
	if received == "" {
		return false
	}

	signed := url.Values{}
	for key, values := range params {
		if !strings.HasPrefix(key, "vnp_") || key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		signed[key] = values
	}

	expected := g.Sign(signed.Encode())
	return hmac.Equal([]byte(strings.ToLower(received)), []byte(expected))
}

func (g *VNPayGateway) Sign(data string) string {
	mac := hmac.New(sha512.New, []byte(g.cfg.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
