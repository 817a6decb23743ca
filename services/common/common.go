package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/logger"
	"gorm.io/gorm"

	"megaBolaoApp/models"
)

const (
	// GameSize is how many numbers a single game picks.
	GameSize = 6
	// MaxNumber is the highest number on the board.
	MaxNumber = 60
	// WinThreshold is the minimum match count in a single game that counts
	// as a win. Fixed policy, not configurable per pool.
	WinThreshold = 4
	// NoteMaxLen caps the free-text note attached to a wager.
	NoteMaxLen = 100
)

// ResultPattern is the accepted external form of a draw result: six
// hyphen-separated tokens of one or two digits. The numbers themselves are
// not range- or uniqueness-checked.
var ResultPattern = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{1,2}-\d{1,2}-\d{1,2}-\d{1,2}$`)

// ParseNumbers splits s on sep and parses each token as an integer.
// Unparseable tokens are skipped.
func ParseNumbers(s, sep string) []int {
	var nums []int
	for _, token := range strings.Split(s, sep) {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// FormatGame joins game numbers into their stored comma-separated form.
func FormatGame(nums []int) string {
	tokens := make([]string, len(nums))
	for i, n := range nums {
		tokens[i] = strconv.Itoa(n)
	}
	return strings.Join(tokens, ",")
}

func LogError(db *gorm.DB, context string, err error) {
	logger.Errorf("%s: %v", context, err)

	errLog := models.ErrorLog{
		Context: context,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}
