package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/nicollemakh/BS-Card-Game/internal/bots"
	"github.com/nicollemakh/BS-Card-Game/internal/engine"
)

const (
	optPlay   = "Play cards"
	optCallBS = "Call BS"
	optPass   = "Pass"
	optQuit   = "Quit"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "deal seed, 0 picks one from the clock")
	botsFlag := flag.String("bots", "1,2,3", "comma-separated bot seats")
	delayFlag := flag.Duration("delay", 800*time.Millisecond, "bot thinking delay")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := engine.NewGame(engine.ClassicPreset(), seed)
	engine.Deal(&state)

	botSeats := map[int]bots.Bot{}
	for _, part := range strings.Split(*botsFlag, ",") {
		seat, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || seat < 0 || seat >= state.Rules.Players {
			continue
		}
		botSeats[seat] = bots.NewScripted(seed+int64(seat)+1, bots.DefaultConfig())
	}

	logger.Info(fmt.Sprintf("Dealt %d players from seed %d", state.Rules.Players, seed))

	for {
		player, ok := engine.CurrentPlayer(state)
		if !ok {
			renderTable(state, botSeats)
			pterm.Success.Printfln("Player %d sheds their last card and wins!", state.Winner)
			return
		}

		if bot, isBot := botSeats[player]; isBot {
			time.Sleep(*delayFlag)
			botTurn(&state, player, bot)
			continue
		}

		renderTable(state, botSeats)
		if !humanTurn(&state, player, logger) {
			pterm.Println("Thanks for playing.")
			return
		}
	}
}

func botTurn(state *engine.GameState, player int, bot bots.Bot) {
	if bot.WantsChallenge(*state, player) {
		if err := engine.CallBS(state, player); err == nil {
			announceResolution(state.LastResult)
			return
		}
	}
	indices, declared := bot.ChoosePlay(*state, player)
	if err := engine.Play(state, player, indices, declared); err != nil {
		pterm.Error.Printfln("Player %d could not move: %v", player, err)
		return
	}
	pterm.Info.Printfln("Player %d plays %d card(s), declaring %v", player, len(indices), declared)
}

// humanTurn runs one interactive decision. Returns false when the player
// quits.
func humanTurn(state *engine.GameState, player int, logger *slog.Logger) bool {
	options := turnOptions(*state, player)
	prompt := fmt.Sprintf("Player %d, you must declare %v", player, engine.RequiredRank(*state))
	choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options).Show()

	switch choice {
	case optPlay:
		indices := pickCards(*state, player)
		if len(indices) == 0 {
			pterm.Info.Println("No cards selected.")
			return true
		}
		if err := engine.Play(state, player, indices, engine.RequiredRank(*state)); err != nil {
			pterm.Error.Printfln("Play rejected: %v", err)
			return true
		}
		pterm.Info.Printfln("You play %d card(s), declaring %v", len(indices), state.Pending.DeclaredRank)
	case optCallBS:
		if err := engine.CallBS(state, player); err != nil {
			pterm.Error.Printfln("Challenge rejected: %v", err)
			return true
		}
		announceResolution(state.LastResult)
	case optPass:
		if err := engine.Pass(state); err != nil {
			pterm.Error.Printfln("Pass rejected: %v", err)
		}
	case optQuit:
		return false
	default:
		logger.Warn("unknown choice", "choice", choice)
	}
	return true
}

// turnOptions lists the choices for the seat about to act. Pass is always
// legal; challenging needs a pending play owned by someone else.
func turnOptions(state engine.GameState, player int) []string {
	options := []string{optPlay}
	if state.Pending != nil && state.Pending.Player != player {
		options = append(options, optCallBS)
	}
	return append(options, optPass, optQuit)
}

// pickCards maps a multiselect over card labels back to hand indices. Labels
// carry the index prefix so duplicate displays stay distinguishable.
func pickCards(state engine.GameState, player int) []int {
	hand := state.Players[player].Hand.Cards()
	labels := make([]string, len(hand))
	byLabel := map[string]int{}
	for i, c := range hand {
		labels[i] = fmt.Sprintf("%2d: %s", i, colorCard(c))
		byLabel[labels[i]] = i
	}

	text := fmt.Sprintf("Pick up to %d cards to play as %v", state.Rules.MaxPlayCards, engine.RequiredRank(state))
	picked, _ := pterm.DefaultInteractiveMultiselect.WithDefaultText(text).WithOptions(labels).Show()

	indices := make([]int, 0, len(picked))
	for _, label := range picked {
		indices = append(indices, byLabel[label])
	}
	return indices
}

func renderTable(state engine.GameState, botSeats map[int]bots.Bot) {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(0).WithBottomPadding(0)

	seats := make([]pterm.Panel, 0, len(state.Players))
	for i := range state.Players {
		p := state.Players[i]
		who := "human"
		if _, isBot := botSeats[p.ID]; isBot {
			who = "bot"
		}
		marker := ""
		if state.Phase != engine.PhaseGameOver && p.ID == state.Current {
			marker = pterm.LightGreen(" *")
		}
		info := pterm.Sprintf("%s\n%d cards%s", who, p.Hand.Size(), marker)
		seats = append(seats, pterm.Panel{Data: pbox.WithTitle(fmt.Sprintf("Player %d", p.ID)).Sprint(info)})
	}

	pile := pterm.Sprintf("Declare: %v | Turn %d | Pile: %d | Discard: %d | Undealt: %d",
		engine.RequiredRank(state), state.TurnCount, pendingCount(state), len(state.Discarded), state.Deck.Remaining())
	if state.Pending != nil {
		pile += pterm.Sprintf("\nPlayer %d claims %d x %v", state.Pending.Player, len(state.Pending.Cards), state.Pending.DeclaredRank)
	}
	table := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).Sprint(pile)}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{seats, {table}}).Render()
}

func announceResolution(r *engine.Resolution) {
	if r == nil {
		return
	}
	if r.WasLie {
		pterm.Warning.Printfln("Player %d calls BS on player %d: it WAS a lie, player %d picks up %d card(s)",
			r.Challenger, r.Player, r.PickedUpBy, r.CardCount)
		return
	}
	pterm.Warning.Printfln("Player %d calls BS on player %d: the play was honest, player %d picks up %d card(s)",
		r.Challenger, r.Player, r.PickedUpBy, r.CardCount)
}

func colorCard(c engine.Card) string {
	if c.Color() == "red" {
		return pterm.LightRed(c.String())
	}
	return c.String()
}

func pendingCount(state engine.GameState) int {
	if state.Pending == nil {
		return 0
	}
	return len(state.Pending.Cards)
}
