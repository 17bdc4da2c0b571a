package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adminbuddy/internal/letter"
	"adminbuddy/internal/session"
)

var (
	genSubject   string
	genRecipient string
	genBody      string
	genTone      string
	genLanguage  string
	genScenario  string
	genTest      bool
	genSave      bool
	genOut       string
)

// generateCmd produces one letter without the interactive interface.
// Flags override the saved draft; omitted fields keep their saved values.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a letter and print it",
	Long: `Generate one letter and print it to stdout.

The saved draft provides defaults; any flag overrides the matching field.
With --test a deterministic sample letter is produced without the model,
which also works on machines without a supported GPU.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sess := newSession()
	defer sess.Close()

	if genLanguage != "" {
		l := letter.Language(genLanguage)
		if !l.Valid() {
			return fmt.Errorf("unknown language %q", genLanguage)
		}
		sess.SetLanguage(l)
	}
	if genTone != "" {
		t := letter.Tone(genTone)
		if !t.Valid() {
			return fmt.Errorf("unknown tone %q", genTone)
		}
		sess.SetTone(t)
	}
	if genScenario != "" {
		if _, ok := letter.PresetByKey(genScenario); !ok && genScenario != letter.ScenarioCustom {
			return fmt.Errorf("unknown scenario %q", genScenario)
		}
		sess.SetScenario(genScenario)
	}
	if cmd.Flags().Changed("subject") {
		sess.SetSubject(genSubject)
	}
	if cmd.Flags().Changed("recipient") {
		sess.SetRecipient(genRecipient)
	}
	if cmd.Flags().Changed("description") {
		sess.SetBody(genBody)
	}

	var out string
	if genTest {
		out = sess.GenerateTest()
	} else {
		var err error
		if out, err = generateWithModel(cmd.Context(), sess); err != nil {
			return err
		}
	}

	if genSave {
		sess.SaveToHistory()
	}
	if genOut != "" {
		if err := os.WriteFile(genOut, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOut, err)
		}
		fmt.Printf("Wrote %s\n", genOut)
		return nil
	}
	fmt.Println(out)
	return nil
}

// generateWithModel starts the engine and waits for the model to finish
// loading before asking for the letter.
func generateWithModel(ctx context.Context, sess *session.Session) (string, error) {
	sess.Start(ctx)

	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(cfg.GetTimeout())

	for {
		st := sess.EngineStatus()
		if st.Ready {
			break
		}
		fmt.Fprintf(os.Stderr, "\rLoading model… %3.0f%%", st.Progress*100)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-deadline:
			fmt.Fprintln(os.Stderr)
			return "", fmt.Errorf("model did not become ready: %s", st.Message)
		case <-tick.C:
		}
	}
	fmt.Fprint(os.Stderr, "\r")

	return sess.Generate(ctx)
}

func init() {
	generateCmd.Flags().StringVarP(&genSubject, "subject", "s", "", "letter subject")
	generateCmd.Flags().StringVarP(&genRecipient, "recipient", "r", "", "recipient name or office")
	generateCmd.Flags().StringVarP(&genBody, "description", "d", "", "what the letter should say, in any supported language")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "tone: formel, neutral or venlig")
	generateCmd.Flags().StringVar(&genLanguage, "language", "", "input language: uk, en or da")
	generateCmd.Flags().StringVar(&genScenario, "scenario", "", "scenario preset key, or custom")
	generateCmd.Flags().BoolVar(&genTest, "test", false, "produce a sample letter without the model")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "save the result to history")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write the letter to a file instead of stdout")
}
