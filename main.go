package main

import "suggestbox/bot"

func main() {
	bot.Start()
}
