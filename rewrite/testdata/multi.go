package handlers

import (
	"context"
	"fmt"

	"example.com/bot"
)

//actiongen:action
func Hello(res *bot.Res, req *bot.Req) error {
	return res.Send(req.User, "hello")
}

func helper(ctx context.Context) string {
	return fmt.Sprintf("at %v", ctx)
}

//actiongen:action max_retries=3
func Bye(res *bot.Res, req *bot.Req) error {
	res.Log(helper(ctx))
	return res.Send(req.User, "bye")
}
