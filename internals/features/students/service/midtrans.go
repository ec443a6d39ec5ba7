package service

import (
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "bimbelku_backend/internals/features/students/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// CreateSnapPaymentLink membuat link pembayaran Snap untuk satu tagihan SPP.
// Order ID deterministik dari fee_payment_id supaya retry tidak menggandakan transaksi.
func CreateSnapPaymentLink(student *model.StudentModel, fee *model.FeePaymentModel) (url string, orderID string, err error) {
	orderID = fmt.Sprintf("FEE-%s", fee.FeePaymentID.String())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(fee.FeePaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: student.StudentName,
			Phone: student.StudentMobile,
		},
	}

	resp, midErr := SnapClient.CreateTransaction(req)
	if midErr != nil {
		return "", "", midErr
	}

	return resp.RedirectURL, orderID, nil
}
