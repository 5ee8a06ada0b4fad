// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates that a PEM block is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse a certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificates indicates that no certificates were found in the input.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// Loader reads the certificates a verification run operates on: the
// leaf whose identity is being checked and the untrusted bundle it is
// chained through. Inputs may be PEM, DER, or [PKCS7].
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
type Loader struct {
	certBlockType string
}

// NewLoader creates a new Loader with default settings.
func NewLoader() *Loader {
	return &Loader{
		certBlockType: "CERTIFICATE",
	}
}

// isPEM checks if the data is in PEM format.
func (l *Loader) isPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// LoadLeaf decodes a single certificate from data, trying PEM, DER, and
// finally PKCS7. For multi-certificate inputs the first certificate is
// taken as the leaf.
func (l *Loader) LoadLeaf(data []byte) (*x509.Certificate, error) {
	if l.isPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != l.certBlockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	return p.Content.SignedData.Certificates[0], nil
}

// LoadBundle decodes every certificate in data, used for the untrusted
// intermediate bundle handed to the verifier.
func (l *Loader) LoadBundle(data []byte) ([]*x509.Certificate, error) {
	if l.isPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != l.certBlockType {
				return nil, ErrInvalidBlockType
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
			data = rest
		}

		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	if certs, err := x509.ParseCertificates(data); err == nil && len(certs) > 0 {
		return certs, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	return p.Content.SignedData.Certificates, nil
}

// EncodePEM encodes a certificate to PEM format for display.
func (l *Loader) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  l.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}
