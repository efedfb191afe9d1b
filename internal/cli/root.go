package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Run starts the interactive command loop. Each command invocation gets a
// context derived from ctx, so quitting the loop cannot leave a late
// response mutating state.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "jobtrack - job application tracker (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "jobtrack> ")
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]
		cmdCtx, cancel := context.WithCancel(ctx)
		a.dispatch(cmdCtx, cmd, args)
		cancel()

		if cmd == "exit" || cmd == "quit" {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.help()
	case "list", "l":
		a.list(ctx)
	case "show":
		id, ok := a.idArg(args, "show <id>")
		if !ok {
			return
		}
		a.show(ctx, id)
	case "add":
		a.add(ctx)
	case "edit":
		id, ok := a.idArg(args, "edit <id>")
		if !ok {
			return
		}
		a.edit(ctx, id)
	case "status":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: status <id> <value>")
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(a.out, "Invalid id %q\n", args[0])
			return
		}
		a.changeStatus(ctx, id, strings.Join(args[1:], " "))
	case "delete":
		id, ok := a.idArg(args, "delete <id>")
		if !ok {
			return
		}
		a.delete(ctx, id)
	case "resume":
		id, ok := a.idArg(args, "resume <id> [file]")
		if !ok {
			return
		}
		out := ""
		if len(args) > 1 {
			out = args[1]
		}
		a.downloadResume(ctx, id, out)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, `Commands:
  list                  show all applications with counters
  show <id>             show one application
  add                   add a new application
  edit <id>             edit an application
  status <id> <value>   change the status of an application
  delete <id>           delete an application
  resume <id> [file]    download the attached resume
  exit                  quit`)
}

func (a *App) idArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}
