package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bhinnashad-api/dtos"
)

// VerifyPayment checks the gateway's HMAC-SHA256 signature over
// "<gateway_order_id>|<payment_id>" and, when authentic, settles the bill
// through the same entry point manual cash confirmation uses. The gateway's
// own wire protocol (order creation, capture) lives outside this backend.
func VerifyPayment(c *gin.Context) {
	var input dtos.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret := os.Getenv("PAYMENT_KEY_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment secret not configured"})
		return
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(input.GatewayOrderID + "|" + input.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(input.Signature)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
		return
	}

	result, err := billingService().SettleBill(input.BillID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"bill": result.Bill, "payment_id": input.PaymentID}
	if len(result.Skipped) > 0 {
		response["skipped_adjustments"] = result.Skipped
	}
	c.JSON(http.StatusOK, response)
}
