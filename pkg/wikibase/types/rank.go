package types

import (
	"fmt"
	"strings"
)

// StatementRank orders competing statements for the same property.
type StatementRank string

const (
	RankNormal     StatementRank = "normal"
	RankPreferred  StatementRank = "preferred"
	RankDeprecated StatementRank = "deprecated"
)

func ParseStatementRank(s string) (StatementRank, error) {
	switch strings.ToLower(s) {
	case "normal":
		return RankNormal, nil
	case "preferred":
		return RankPreferred, nil
	case "deprecated":
		return RankDeprecated, nil
	}
	return "", fmt.Errorf("unknown statement rank \"%s\"", s)
}
