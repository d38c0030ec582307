package sampledata

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"lexipro-backend/models"
)

// GenesisPreviousHash is the previous hash recorded on block 0
const GenesisPreviousHash = "0"

const transactionsPerBlock = 2

var transactions = []models.Transaction{
	{From: "John Smith", To: "LexiPro Escrow", Kind: "retainer", Amount: 2500, Timestamp: day(2024, time.January, 16)},
	{From: "LexiPro Escrow", To: "Sarah Mitchell", Kind: "fee_release", Amount: 1200, Timestamp: day(2024, time.February, 1)},
	{From: "TechNova Inc.", To: "LexiPro Escrow", Kind: "retainer", Amount: 10000, Timestamp: day(2024, time.March, 12)},
	{From: "Priya Patel", To: "TechNova Inc.", Kind: "document_notarization", Amount: 0, Timestamp: day(2024, time.March, 20)},
	{From: "Linh Nguyen", To: "LexiPro Escrow", Kind: "retainer", Amount: 3200, Timestamp: day(2024, time.April, 19)},
	{From: "LexiPro Escrow", To: "Alicia Johnson", Kind: "settlement_payout", Amount: 45000, Timestamp: day(2024, time.April, 30)},
	{From: "Emily Lee", To: "LexiPro Escrow", Kind: "retainer", Amount: 1800, Timestamp: day(2024, time.May, 6)},
}

// transactionID derives a stable identifier from the transaction content
func transactionID(tx models.Transaction) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%.2f|%d", tx.From, tx.To, tx.Kind, tx.Amount, tx.Timestamp.Unix())))
	return "0x" + hex.EncodeToString(sum[:])
}

// Transactions returns the sample ledger transactions with their IDs
func Transactions() []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		tx.ID = transactionID(tx)
		out[i] = tx
	}
	return out
}

// BlockHash hashes the block header and its transaction IDs
func BlockHash(b models.Block) string {
	ids := make([]string, len(b.Transactions))
	for i, tx := range b.Transactions {
		ids[i] = tx.ID
	}
	payload := fmt.Sprintf("%d|%d|%s|%s", b.Index, b.Timestamp.Unix(), strings.Join(ids, ","), b.PreviousHash)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Blocks groups the sample transactions into a hash-linked chain
func Blocks() []models.Block {
	txs := Transactions()
	blocks := make([]models.Block, 0, (len(txs)+transactionsPerBlock-1)/transactionsPerBlock)

	previous := GenesisPreviousHash
	for start := 0; start < len(txs); start += transactionsPerBlock {
		end := start + transactionsPerBlock
		if end > len(txs) {
			end = len(txs)
		}
		group := txs[start:end]

		b := models.Block{
			Index:        len(blocks),
			Timestamp:    group[len(group)-1].Timestamp,
			Transactions: append([]models.Transaction(nil), group...),
			PreviousHash: previous,
		}
		b.Hash = BlockHash(b)
		blocks = append(blocks, b)
		previous = b.Hash
	}
	return blocks
}

// VerifyChain reports the index of the first block whose hash or link is wrong, or -1
func VerifyChain(blocks []models.Block) int {
	previous := GenesisPreviousHash
	for i, b := range blocks {
		if b.PreviousHash != previous || b.Hash != BlockHash(b) {
			return i
		}
		previous = b.Hash
	}
	return -1
}
