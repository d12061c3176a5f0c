package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(code string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (g DefaultQRGenerator) Generate(code string) ([]byte, error) {
	return qrcode.Encode(code, qrcode.Medium, 256)
}
