package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/pokerverse/internal/game"
)

// EncodeScript renders s in the format LoadScript reads.
func EncodeScript(s *Script) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if len(s.Players) > 0 {
		names := make([]cty.Value, len(s.Players))
		for i, p := range s.Players {
			names[i] = cty.StringVal(p)
		}
		body.SetAttributeValue("players", cty.ListVal(names))
	}
	if s.Seed != 0 {
		body.SetAttributeValue("seed", cty.NumberIntVal(s.Seed))
	}
	for _, stake := range []struct {
		name  string
		value *int
	}{
		{"ante", s.Ante},
		{"starting_chips", s.StartingChips},
		{"community_penalty", s.CommunityPenalty},
	} {
		if stake.value != nil {
			body.SetAttributeValue(stake.name, cty.NumberIntVal(int64(*stake.value)))
		}
	}

	for i, a := range s.Actions {
		kind, attrs, err := blockFor(a)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		body.AppendNewline()
		block := body.AppendNewBlock("action", []string{kind}).Body()
		for _, attr := range attrs {
			block.SetAttributeValue(attr.name, attr.value)
		}
	}
	return f.Bytes(), nil
}

type attribute struct {
	name  string
	value cty.Value
}

func num(name string, v int) attribute {
	return attribute{name, cty.NumberIntVal(int64(v))}
}

func blockFor(a game.Action) (string, []attribute, error) {
	switch a := a.(type) {
	case game.CheckAction:
		return "check", []attribute{num("timeline", a.Timeline)}, nil
	case game.CallAction:
		return "call", []attribute{num("timeline", a.Timeline)}, nil
	case game.FoldAction:
		return "fold", []attribute{num("timeline", a.Timeline)}, nil
	case game.BetAction:
		return "bet", []attribute{num("timeline", a.Timeline), num("amount", a.Amount)}, nil
	case game.RaiseAction:
		return "raise", []attribute{num("timeline", a.Timeline), num("amount", a.Amount)}, nil
	case game.SkipAction:
		return "skip", []attribute{num("timeline", a.Timeline), num("board", a.Board)}, nil
	case game.ToggleAction:
		return "toggle", []attribute{num("timeline", a.Timeline), num("board", a.Board)}, nil
	case game.AdvanceAction:
		return "advance", nil, nil
	case game.BeginAction:
		return "begin", nil, nil
	case game.MoveAction:
		from := fmt.Sprintf("%d:%d:%s:%d", a.From.Timeline, a.From.Board, a.From.Slot, a.Card)
		to := fmt.Sprintf("%d:%d:%s", a.To.Timeline, a.To.Board, a.To.Slot)
		return "move", []attribute{
			{"from", cty.StringVal(from)},
			{"to", cty.StringVal(to)},
			num("amount", a.Amount),
		}, nil
	default:
		return "", nil, fmt.Errorf("cannot record %T", a)
	}
}

// SaveScript writes s to filename. The file is written to a temporary name
// and renamed into place so readers never see a partial script.
func SaveScript(filename string, s *Script) error {
	data, err := EncodeScript(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close script: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename script: %w", err)
	}
	committed = true
	return nil
}
