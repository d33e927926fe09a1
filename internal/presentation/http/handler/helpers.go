package handler

import (
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the operator ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// IsAdmin checks if the operator has the admin role
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	if !exists {
		return false
	}
	roleStr, ok := role.(string)
	return ok && roleStr == "admin"
}

// usdToCents converts a USD figure from the wire to internal cents
func usdToCents(usd float64) int64 {
	return money.FromFloat(usd, money.USD).Amount
}

// amountToCents converts a wire amount to cents of the given currency
func amountToCents(amount float64, currency money.Currency) int64 {
	return money.FromFloat(amount, currency).Amount
}

func parseHairLength(s string) enum.HairLength {
	switch s {
	case "Mediano":
		return enum.HairLengthMediano
	case "Largo":
		return enum.HairLengthLargo
	case "Extensiones":
		return enum.HairLengthExtensiones
	default:
		return enum.HairLengthCorto
	}
}

func parseDiscountPolicy(s string) enum.DiscountPolicy {
	switch s {
	case "Promotion":
		return enum.DiscountPolicyPromotion
	case "Exchange":
		return enum.DiscountPolicyExchange
	case "PayableAccount":
		return enum.DiscountPolicyPayableAccount
	case "ReceivableAccount":
		return enum.DiscountPolicyReceivableAccount
	default:
		return enum.DiscountPolicyNone
	}
}

func parsePaymentMethod(s string) enum.PaymentMethod {
	switch s {
	case "Card":
		return enum.PaymentMethodCard
	case "MobilePayment":
		return enum.PaymentMethodMobile
	case "Transfer":
		return enum.PaymentMethodTransfer
	case "Zelle":
		return enum.PaymentMethodZelle
	default:
		return enum.PaymentMethodCash
	}
}

func parseDestination(s string) enum.PaymentDestination {
	switch s {
	case "Capelli":
		return enum.DestinationPrimary
	case "Rosa":
		return enum.DestinationSecondary
	default:
		return enum.DestinationNone
	}
}
