package calculators

import (
	"fmt"
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/format"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// InheritanceInput is the statutory inheritance share calculation input.
type InheritanceInput struct {
	TotalEstate           float64 `json:"totalEstate"`
	HasSpouse             bool    `json:"hasSpouse"`
	NumberOfChildren      int     `json:"numberOfChildren"`
	HasLivingParents      bool    `json:"hasLivingParents"`
	HasLivingGrandparents bool    `json:"hasLivingGrandparents"`
}

// Normalize validates the input.
func (in InheritanceInput) Normalize(now time.Time) (InheritanceInput, []FieldError) {
	var l errList
	l.checkRequiredMoney("totalEstate", in.TotalEstate, "Miras değeri girilmelidir")
	l.checkCount("numberOfChildren", in.NumberOfChildren, -1, "")
	return in, l.errs
}

// HeirType classifies an heir in the output.
type HeirType string

const (
	HeirSpouse      HeirType = "spouse"
	HeirChild       HeirType = "child"
	HeirParent      HeirType = "parent"
	HeirGrandparent HeirType = "grandparent"
	HeirState       HeirType = "state"
)

// Heir is one derived heir with their statutory and reserved shares.
type Heir struct {
	Type            HeirType `json:"type"`
	Label           string   `json:"label"`
	Share           float64  `json:"share"`
	ShareLabel      string   `json:"shareLabel"`
	Amount          float64  `json:"amount"`
	ReservedPortion float64  `json:"reservedPortion"`
}

// InheritanceResult is the inheritance share calculation output.
type InheritanceResult struct {
	TotalEstate          float64            `json:"totalEstate"`
	Heirs                []Heir             `json:"heirs"`
	DisposablePortion    float64            `json:"disposablePortion"`
	TotalReservedPortion float64            `json:"totalReservedPortion"`
	Summary              string             `json:"summary"`
	Breakdown            []BreakdownLine    `json:"breakdown"`
	Disclaimer           DisclaimerCategory `json:"disclaimer"`
}

// CalculateInheritance apportions an estate among the statutory heirs.
//
// Heir classes take in fixed precedence: descendants, then parents, then
// grandparents, then the spouse alone, and finally the state by escheat. The
// surviving spouse takes a class-dependent fraction and the residue splits
// evenly within the class. Each heir class that is empty falls through to
// the next, so no branch ever divides by a zero head-count.
func CalculateInheritance(in InheritanceInput, t *tariff.Table) InheritanceResult {
	shares := t.Inheritance
	estate := in.TotalEstate

	var heirs []Heir
	remainingShare := 1.0
	totalReservedFraction := 0.0

	addSpouse := func(share, reservedRate float64) {
		reserved := share * reservedRate
		heirs = append(heirs, Heir{
			Type:            HeirSpouse,
			Label:           "Sağ Kalan Eş",
			Share:           share,
			ShareLabel:      format.FractionLabel(share, 1),
			Amount:          mathutil.Round(estate * share),
			ReservedPortion: mathutil.Round(estate * reserved),
		})
		remainingShare -= share
		totalReservedFraction += reserved
	}

	switch {
	case in.NumberOfChildren > 0:
		// First class: descendants.
		if in.HasSpouse {
			addSpouse(shares.SpouseWithChildren, shares.ReservedSpouse)
		}
		childShare := remainingShare / float64(in.NumberOfChildren)
		childReserved := childShare * shares.ReservedDescendant
		for i := 0; i < in.NumberOfChildren; i++ {
			heirs = append(heirs, Heir{
				Type:            HeirChild,
				Label:           fmt.Sprintf("%d. Çocuk", i+1),
				Share:           childShare,
				ShareLabel:      format.FractionLabel(childShare, 1),
				Amount:          mathutil.Round(estate * childShare),
				ReservedPortion: mathutil.Round(estate * childReserved),
			})
			totalReservedFraction += childReserved
		}

	case in.HasLivingParents:
		// Second class: parents.
		if in.HasSpouse {
			addSpouse(shares.SpouseWithParents, shares.ReservedSpouse)
		}
		parentShare := remainingShare / 2
		parentReserved := parentShare * shares.ReservedParent
		for _, label := range []string{"Anne", "Baba"} {
			heirs = append(heirs, Heir{
				Type:            HeirParent,
				Label:           label,
				Share:           parentShare,
				ShareLabel:      format.FractionLabel(parentShare, 1),
				Amount:          mathutil.Round(estate * parentShare),
				ReservedPortion: mathutil.Round(estate * parentReserved),
			})
			totalReservedFraction += parentReserved
		}

	case in.HasLivingGrandparents:
		// Third class: grandparents carry no reserved portion, and neither
		// does the spouse beside them.
		if in.HasSpouse {
			heirs = append(heirs, Heir{
				Type:       HeirSpouse,
				Label:      "Sağ Kalan Eş",
				Share:      shares.SpouseWithGrandparents,
				ShareLabel: format.FractionLabel(shares.SpouseWithGrandparents, 1),
				Amount:     mathutil.Round(estate * shares.SpouseWithGrandparents),
			})
			remainingShare -= shares.SpouseWithGrandparents
		}
		grandparentShare := remainingShare / 4
		labels := []string{
			"Anne tarafı büyükanne",
			"Anne tarafı büyükbaba",
			"Baba tarafı büyükanne",
			"Baba tarafı büyükbaba",
		}
		for _, label := range labels {
			heirs = append(heirs, Heir{
				Type:       HeirGrandparent,
				Label:      label,
				Share:      grandparentShare,
				ShareLabel: format.FractionLabel(grandparentShare, 1),
				Amount:     mathutil.Round(estate * grandparentShare),
			})
		}

	case in.HasSpouse:
		heirs = append(heirs, Heir{
			Type:            HeirSpouse,
			Label:           "Sağ Kalan Eş",
			Share:           shares.SpouseAlone,
			ShareLabel:      "Tamamı",
			Amount:          mathutil.Round(estate),
			ReservedPortion: mathutil.Round(estate * shares.ReservedSpouse),
		})
		totalReservedFraction = shares.ReservedSpouse

	default:
		heirs = append(heirs, Heir{
			Type:       HeirState,
			Label:      "Devlet",
			Share:      1,
			ShareLabel: "Tamamı",
			Amount:     mathutil.Round(estate),
		})
	}

	summary := inheritanceSummary(in)

	breakdown := make([]BreakdownLine, 0, len(heirs))
	for _, heir := range heirs {
		breakdown = append(breakdown, BreakdownLine{
			Label: heir.Label,
			Value: heir.Amount,
			Note:  heir.ShareLabel,
		})
	}

	return InheritanceResult{
		TotalEstate:          estate,
		Heirs:                heirs,
		DisposablePortion:    mathutil.Round(estate * (1 - totalReservedFraction)),
		TotalReservedPortion: mathutil.Round(estate * totalReservedFraction),
		Summary:              summary,
		Breakdown:            breakdown,
		Disclaimer:           DisclaimerGeneral,
	}
}

func inheritanceSummary(in InheritanceInput) string {
	switch {
	case in.NumberOfChildren > 0 && in.HasSpouse:
		return fmt.Sprintf("Eş 1/4, %d çocuk kalan 3/4'ü eşit paylaşır.", in.NumberOfChildren)
	case in.NumberOfChildren > 0:
		return fmt.Sprintf("%d çocuk mirası eşit paylaşır.", in.NumberOfChildren)
	case in.HasLivingParents && in.HasSpouse:
		return "Eş 1/2, anne ve baba kalan 1/2'yi eşit paylaşır."
	case in.HasLivingParents:
		return "Anne ve baba mirası eşit paylaşır."
	case in.HasLivingGrandparents && in.HasSpouse:
		return "Eş 3/4, büyükanne ve büyükbabalar kalan 1/4'ü eşit paylaşır."
	case in.HasLivingGrandparents:
		return "Büyükanne ve büyükbabalar mirası eşit paylaşır."
	case in.HasSpouse:
		return "Sağ kalan eş tek mirasçı olarak mirasın tamamını alır."
	default:
		return "Yasal mirasçı bulunmadığından miras devlete kalır."
	}
}
