package utils

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// SelectPrompt runs the given select and returns the picked item.
// Bails out of the whole program when the user aborts
func SelectPrompt(prompt *promptui.Select) string {
	_, res, err := prompt.Run()
	if err != nil {
		fmt.Println("Aborting")
		os.Exit(1)
	}
	return res
}

// BoolPrompt runs a confirm prompt. Aborting with ^C exits, every
// other non-confirmation counts as a no
func BoolPrompt(prompt *promptui.Prompt) bool {
	_, err := prompt.Run()
	if err != nil {
		if err.Error() == "^C" {
			fmt.Println("Aborting")
			os.Exit(1)
		}
		return false
	}
	return true
}
