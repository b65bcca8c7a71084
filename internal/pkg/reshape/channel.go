package reshape

import (
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/shopspring/decimal"
)

// PivotChannels turns long-form per-channel rows into one comparison row
// per item/kind with both channel averages and their signed difference
// (retail minus traditional). Items missing either channel's price are
// dropped; the comparison needs both sides.
//
// Input order is preserved for the surviving rows; duplicates keep the
// first value seen per channel.
func PivotChannels(stats []domain.ChannelStat) []domain.ChannelComparison {
	type acc struct {
		retail      *float64
		traditional *float64
		retailRecs  int64
		tradRecs    int64
	}

	order := make([]string, 0, len(stats))
	byItem := make(map[string]*acc)
	names := make(map[string][2]string)

	for _, stat := range stats {
		key := stat.ItemNm + "\x1f" + stat.KindNm
		a, ok := byItem[key]
		if !ok {
			a = &acc{}
			byItem[key] = a
			names[key] = [2]string{stat.ItemNm, stat.KindNm}
			order = append(order, key)
		}

		price := stat.AvgPrice
		switch stat.ChannelType {
		case domain.ChannelRetail:
			if a.retail == nil {
				a.retail = &price
				a.retailRecs = stat.Records
			}
		case domain.ChannelTraditional:
			if a.traditional == nil {
				a.traditional = &price
				a.tradRecs = stat.Records
			}
		}
	}

	rows := make([]domain.ChannelComparison, 0, len(order))
	for _, key := range order {
		a := byItem[key]
		if a.retail == nil || a.traditional == nil {
			continue
		}

		diff := decimal.NewFromFloat(*a.retail).
			Sub(decimal.NewFromFloat(*a.traditional)).
			InexactFloat64()

		rows = append(rows, domain.ChannelComparison{
			ItemNm:           names[key][0],
			KindNm:           names[key][1],
			RetailAvg:        *a.retail,
			TraditionalAvg:   *a.traditional,
			PriceDiff:        diff,
			RetailRecords:    a.retailRecs,
			TraditionalRecs:  a.tradRecs,
		})
	}
	return rows
}

// ChannelCard is one rendered comparison card.
type ChannelCard struct {
	ItemNm         string  `json:"item_nm"`
	KindNm         string  `json:"kind_nm"`
	CheaperChannel string  `json:"cheaper_channel"`
	CheaperPrice   float64 `json:"cheaper_price"`
	OtherChannel   string  `json:"other_channel"`
	OtherPrice     float64 `json:"other_price"`
	PriceDiff      float64 `json:"price_diff"`
}

// ChannelCardSections partitions comparison rows by which channel is
// cheaper.
type ChannelCardSections struct {
	RetailCheaper      []ChannelCard `json:"retail_cheaper"`
	TraditionalCheaper []ChannelCard `json:"traditional_cheaper"`
}

const cardsPerSection = 3

// SplitChannelCards partitions rows by the sign of the price difference
// and keeps the first three of each side. The input is already ordered by
// absolute difference descending; no re-sorting happens here.
func SplitChannelCards(rows []domain.ChannelComparison) ChannelCardSections {
	var sections ChannelCardSections

	for _, row := range rows {
		switch {
		case row.PriceDiff < 0 && len(sections.RetailCheaper) < cardsPerSection:
			sections.RetailCheaper = append(sections.RetailCheaper, ChannelCard{
				ItemNm:         row.ItemNm,
				KindNm:         row.KindNm,
				CheaperChannel: "대형마트",
				CheaperPrice:   row.RetailAvg,
				OtherChannel:   "전통시장",
				OtherPrice:     row.TraditionalAvg,
				PriceDiff:      -row.PriceDiff,
			})
		case row.PriceDiff > 0 && len(sections.TraditionalCheaper) < cardsPerSection:
			sections.TraditionalCheaper = append(sections.TraditionalCheaper, ChannelCard{
				ItemNm:         row.ItemNm,
				KindNm:         row.KindNm,
				CheaperChannel: "전통시장",
				CheaperPrice:   row.TraditionalAvg,
				OtherChannel:   "대형마트",
				OtherPrice:     row.RetailAvg,
				PriceDiff:      row.PriceDiff,
			})
		}
	}

	return sections
}
