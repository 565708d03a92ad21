// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS key pairs for the listeners
package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/util"
)

// Get - load a certificate and key file pair
//
// returns the TLS configuration and the SHA3-256 fingerprint of the
// certificate
func Get(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFile, keyFile)
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in vestingd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - create a self-signed certificate and key file pair
func MakeSelfSigned(name string, certificateFile string, keyFile string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFile) {
		return fault.ErrCertificateFileAlreadyExists
	}

	if util.EnsureFileExists(keyFile) {
		return fault.ErrKeyFileAlreadyExists
	}

	org := "vestingd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = os.WriteFile(certificateFile, cert, 0666); err != nil {
		return err
	}

	if err = os.WriteFile(keyFile, key, 0600); err != nil {
		_ = os.Remove(certificateFile)
		return err
	}

	return nil
}
