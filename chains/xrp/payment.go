package xrp

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// MaxDrops is the total XRP supply in drops
const MaxDrops = 100_000_000_000_000_000

// tfFullyCanonicalSig is set on every payment, as ripple-lib does
const tfFullyCanonicalSig = 0x80000000

// hash prefixes
var (
	prefixSigning = []byte{0x53, 0x54, 0x58, 0x00} // STX\0
	prefixTxID    = []byte{0x54, 0x58, 0x4e, 0x00} // TXN\0
)

// serialized type codes
const (
	typeUInt16    = 1
	typeUInt32    = 2
	typeAmount    = 6
	typeBlob      = 7
	typeAccountID = 8
)

// ErrSecretMismatch is returned when the secret does not control the account
var ErrSecretMismatch = errors.New("secret does not control account")

// Payment is an XRP to XRP payment. Amount and Fee are drops.
type Payment struct {
	Account            string
	Destination        string
	Amount             uint64
	Fee                uint64
	Sequence           uint32
	LastLedgerSequence uint32
	DestinationTag     *uint32
	SourceTag          *uint32
}

// SignedPayment is a payment ready for submit
type SignedPayment struct {
	TxBlob string `json:"tx_blob"`
	Hash   string `json:"hash"`
}

// SignPayment signs p with the key of secret. The secret stays local; only
// the blob is meant to leave the process.
func SignPayment(p Payment, secret string) (SignedPayment, error) {
	entropy, err := DecodeSeed(secret)
	if err != nil {
		return SignedPayment{}, err
	}
	priv, pub := DeriveKeypair(entropy)
	account, err := EncodeClassicAddress(AccountID(pub))
	if err != nil {
		return SignedPayment{}, err
	}
	if account != p.Account {
		return SignedPayment{}, ErrSecretMismatch
	}

	pubKey := pub.SerializeCompressed()
	unsigned, err := p.encode(pubKey, nil)
	if err != nil {
		return SignedPayment{}, err
	}
	signature := ecdsa.Sign(priv, SigningHash(unsigned)).Serialize()

	signed, err := p.encode(pubKey, signature)
	if err != nil {
		return SignedPayment{}, err
	}
	id := sha512Half(append(append([]byte{}, prefixTxID...), signed...))
	return SignedPayment{
		TxBlob: strings.ToUpper(hex.EncodeToString(signed)),
		Hash:   strings.ToUpper(hex.EncodeToString(id)),
	}, nil
}

// SigningHash is the digest a signature covers: SHA-512Half of STX\0 and
// the payment serialized without TxnSignature
func SigningHash(unsigned []byte) []byte {
	return sha512Half(append(append([]byte{}, prefixSigning...), unsigned...))
}

// VerifyPayment checks the signature of a signed blob against pubKey
func VerifyPayment(p Payment, pubKey *btcec.PublicKey, signature []byte) (bool, error) {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false, err
	}
	unsigned, err := p.encode(pubKey.SerializeCompressed(), nil)
	if err != nil {
		return false, err
	}
	return sig.Verify(SigningHash(unsigned), pubKey), nil
}

// encode writes the canonical binary form. Fields are ordered by type code
// then field code; a nil signature leaves TxnSignature out.
func (p Payment) encode(signingPubKey, signature []byte) ([]byte, error) {
	account, err := DecodeClassicAddress(p.Account)
	if err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}
	destination, err := DecodeClassicAddress(p.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	amount, err := nativeAmount(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	fee, err := nativeAmount(p.Fee)
	if err != nil {
		return nil, fmt.Errorf("fee: %w", err)
	}

	var buf bytes.Buffer
	writeHeader(&buf, typeUInt16, 2) // TransactionType
	buf.Write([]byte{0x00, 0x00})    // Payment
	writeUInt32(&buf, 2, tfFullyCanonicalSig)
	if p.SourceTag != nil {
		writeUInt32(&buf, 3, *p.SourceTag)
	}
	writeUInt32(&buf, 4, p.Sequence)
	if p.DestinationTag != nil {
		writeUInt32(&buf, 14, *p.DestinationTag)
	}
	if p.LastLedgerSequence != 0 {
		writeUInt32(&buf, 27, p.LastLedgerSequence)
	}
	writeHeader(&buf, typeAmount, 1)
	buf.Write(amount)
	writeHeader(&buf, typeAmount, 8)
	buf.Write(fee)
	writeHeader(&buf, typeBlob, 3) // SigningPubKey
	writeVL(&buf, signingPubKey)
	if signature != nil {
		writeHeader(&buf, typeBlob, 4) // TxnSignature
		writeVL(&buf, signature)
	}
	writeHeader(&buf, typeAccountID, 1)
	writeVL(&buf, account)
	writeHeader(&buf, typeAccountID, 3)
	writeVL(&buf, destination)
	return buf.Bytes(), nil
}

// nativeAmount is the 64 bit XRP amount: not-IOU bit clear, positive bit set
func nativeAmount(drops uint64) ([]byte, error) {
	if drops > MaxDrops {
		return nil, fmt.Errorf("%d drops exceeds the XRP supply", drops)
	}
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, drops|0x4000000000000000)
	return out, nil
}

func writeHeader(buf *bytes.Buffer, typeCode, fieldCode byte) {
	switch {
	case typeCode < 16 && fieldCode < 16:
		buf.WriteByte(typeCode<<4 | fieldCode)
	case typeCode < 16:
		buf.WriteByte(typeCode << 4)
		buf.WriteByte(fieldCode)
	case fieldCode < 16:
		buf.WriteByte(fieldCode)
		buf.WriteByte(typeCode)
	default:
		buf.Write([]byte{0, typeCode, fieldCode})
	}
}

func writeUInt32(buf *bytes.Buffer, fieldCode byte, v uint32) {
	writeHeader(buf, typeUInt32, fieldCode)
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// writeVL writes a length-prefixed field. Payment blobs never exceed 192 bytes.
func writeVL(buf *bytes.Buffer, data []byte) {
	buf.WriteByte(byte(len(data)))
	buf.Write(data)
}
