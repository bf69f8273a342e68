// Package codec reads and writes the line oriented save format:
//
//	Player|<score>
//	Simple|<name>|<description>|<points>|<True|False>
//	Eternal|<name>|<description>|<points>|<timesRecorded>
//	Checklist|<name>|<description>|<points>|<target>|<bonus>|<timesCompleted>
//
// Fields are split on goal.Delimiter and never escaped.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saulo-duarte/eternal-quest/internal/goal"
)

const TagPlayer = "Player"

// MaxLineSize is the longest record Decode accepts. Longer lines are skipped.
const MaxLineSize = 1 << 20

// Snapshot is the full persisted state of a quest.
type Snapshot struct {
	HasPlayer bool
	Score     int
	Goals     []goal.Goal

	// Skipped counts lines that were dropped on decode.
	Skipped int
}

// Record is one successfully parsed line. Exactly one of Goal or the
// player score is meaningful, depending on Tag.
type Record struct {
	Tag   string
	Score int
	Goal  goal.Goal
}

func Encode(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%s%d\n", TagPlayer, goal.Delimiter, snap.Score); err != nil {
		return err
	}
	for _, g := range snap.Goals {
		if _, err := bw.WriteString(g.Serialize() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads every line of r. Blank lines are ignored; malformed lines and
// unknown tags are skipped and counted. Only read errors are returned.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	br := bufio.NewReader(r)

	for {
		line, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("read save: %w", err)
		}
		if tooLong {
			snap.Skipped++
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, ok := ParseLine(line)
		if !ok {
			snap.Skipped++
			continue
		}
		if rec.Tag == TagPlayer {
			snap.HasPlayer = true
			snap.Score = rec.Score
			continue
		}
		snap.Goals = append(snap.Goals, rec.Goal)
	}
	return snap, nil
}

// readLine returns the next line without its line ending. Lines longer than
// MaxLineSize are consumed to their end and reported as tooLong.
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	started, tooLong := false, false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		started = true
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// ParseLine parses a single record. It reports false for unknown tags, a
// wrong number of fields, or fields that do not coerce to their type.
func ParseLine(line string) (Record, bool) {
	parts := strings.Split(line, goal.Delimiter)
	tag := parts[0]

	if tag == TagPlayer {
		if len(parts) != 2 {
			return Record{}, false
		}
		score, ok := parseInt(parts[1])
		if !ok {
			return Record{}, false
		}
		return Record{Tag: tag, Score: score}, true
	}

	g, ok := parseGoal(goal.Kind(tag), parts)
	if !ok {
		return Record{}, false
	}
	return Record{Tag: tag, Goal: g}, true
}

func parseGoal(kind goal.Kind, parts []string) (goal.Goal, bool) {
	switch kind {
	case goal.KindSimple:
		if len(parts) != 5 {
			return nil, false
		}
		points, ok1 := parseInt(parts[3])
		completed, ok2 := parseBool(parts[4])
		if !ok1 || !ok2 {
			return nil, false
		}
		return goal.RestoreSimple(parts[1], parts[2], points, completed), true

	case goal.KindEternal:
		if len(parts) != 5 {
			return nil, false
		}
		ints, ok := parseInts(parts[3:5])
		if !ok {
			return nil, false
		}
		return goal.RestoreEternal(parts[1], parts[2], ints[0], ints[1]), true

	case goal.KindChecklist:
		if len(parts) != 7 {
			return nil, false
		}
		ints, ok := parseInts(parts[3:7])
		if !ok {
			return nil, false
		}
		return goal.RestoreChecklist(parts[1], parts[2], ints[0], ints[1], ints[2], ints[3]), true
	}
	return nil, false
}

func parseInts(fields []string) ([]int, bool) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, ok := parseInt(f)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

func parseBool(s string) (bool, bool) {
	switch s = strings.TrimSpace(s); {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}
