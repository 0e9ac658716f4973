package main

import (
	"os"

	"github.com/lixenwraith/logbridge"
	"github.com/lixenwraith/logbridge/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	logger *logbridge.Logger
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.logger.Info("echo server booted")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.logger.Trace("echo", len(buf), "bytes to", c.RemoteAddr())
	_, _ = c.Write(buf)
	return gnet.None
}

func main() {
	// Envelopes go to the parent process as JSON lines on stdout, one per record
	logger, err := logbridge.NewBuilder().
		Host(logbridge.NewWriterHost(os.Stdout)).
		LevelString("debug").
		ShowLogsInstant(true).
		Sanitization("json").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// gnet's own diagnostics travel through the same bridge
	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
