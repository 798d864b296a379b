package handlers

import "example.com/bot"

//actiongen:action
func Greet(res *bot.Res, req *bot.Req) error {
	msg := req.Text()
	if msg == "Hello" {
		return res.Send(req.User, "Hello, welcome!")
	}
	return nil
}
