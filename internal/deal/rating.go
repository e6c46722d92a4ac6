package deal

// RatingAgency identifies the agency behind a credit rating.
type RatingAgency string

const (
	AgencySP      RatingAgency = "S&P"
	AgencyMoodys  RatingAgency = "Moody's"
	AgencyFitch   RatingAgency = "Fitch"
	AgencyKBRA    RatingAgency = "KBRA"
	AgencyDBRS    RatingAgency = "DBRS"
)

// Rating is a credit rating with its issuing agency.
type Rating struct {
	Agency RatingAgency
	Rating string // AAA, Aa1, BBB+, etc.
}

// spScale maps S&P-style rating symbols to numeric scores; higher is better.
var spScale = map[string]int{
	"AAA": 21, "AA+": 20, "AA": 19, "AA-": 18,
	"A+": 17, "A": 16, "A-": 15,
	"BBB+": 14, "BBB": 13, "BBB-": 12,
	"BB+": 11, "BB": 10, "BB-": 9,
	"B+": 8, "B": 7, "B-": 6,
	"CCC+": 5, "CCC": 4, "CCC-": 3,
	"CC": 2, "C": 1, "D": 0, "NR": -1,
}

// NumericScore converts the rating to a numeric score for comparison.
// Unknown symbols score -1, same as NR.
func (r Rating) NumericScore() int {
	score, ok := spScale[r.Rating]
	if !ok {
		return -1
	}
	return score
}
