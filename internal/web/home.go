package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>RDFPoker</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 48rem; }
      section { border: 1px solid #ccc; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
      button { margin-right: 0.5rem; }
      #events { font-family: monospace; font-size: 0.85rem; white-space: pre-wrap; }
    </style>
  </head>
  <body>
    <h1>RDFPoker</h1>

    <section>
      <h2>Game</h2>
      <button id="createGame">Create game</button>
      <input id="gameId" placeholder="game state id" size="40"/>
      <button id="subscribe">Subscribe</button>
      <div id="gameResult"></div>
    </section>

    <section>
      <h2>Join</h2>
      <input id="nickName" placeholder="nickname"/>
      <label><input id="isDealer" type="checkbox"/> dealer</label>
      <button id="joinGame">Join</button>
      <div id="joinResult"></div>
    </section>

    <section>
      <h2>Phase</h2>
      <button class="phase" data-phase="PREGAME">Pregame</button>
      <button class="phase" data-phase="PREPARATION">Preparation</button>
      <button class="phase" data-phase="TURN">Turn</button>
      <button class="phase" data-phase="BETTING">Betting</button>
      <button class="phase" data-phase="POSTGAME">Postgame</button>
    </section>

    <section>
      <h2>Events</h2>
      <div id="events"></div>
    </section>

    <script>
      const $ = (id) => document.getElementById(id);
      const logEvent = (name, data) => {
        $("events").textContent = name + " " + data + "\n" + $("events").textContent;
      };

      $("createGame").addEventListener("click", async () => {
        const res = await fetch("/api/state", { method: "POST" });
        const body = await res.json();
        $("gameId").value = body.id;
        $("gameResult").textContent = "created " + body.id;
      });

      $("subscribe").addEventListener("click", () => {
        const id = $("gameId").value.trim();
        if (!id) return;
        const source = new EventSource("/api/receive/" + id);
        for (const name of ["PHASE", "TURN", "RULES"]) {
          source.addEventListener(name, (e) => logEvent(name, e.data));
        }
        $("gameResult").textContent = "subscribed to " + id;
      });

      $("joinGame").addEventListener("click", async () => {
        const res = await fetch("/api/player", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({
            gameStateId: $("gameId").value.trim(),
            nickName: $("nickName").value || null,
            isDealer: $("isDealer").checked,
          }),
        });
        const body = await res.json();
        $("joinResult").textContent = res.ok ? "joined as " + body.id : body.error;
      });

      for (const button of document.querySelectorAll(".phase")) {
        button.addEventListener("click", async () => {
          await fetch("/api/state", {
            method: "PUT",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({
              id: $("gameId").value.trim(),
              phaseString: button.dataset.phase,
            }),
          });
        });
      }
    </script>
  </body>
</html>
`)
		return err
	})
}
