package main

import "github.com/marcus/moodtask/cmd/moodtask/commands"

func main() {
	commands.Execute()
}
