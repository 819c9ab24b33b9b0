package main

func main() {
	cfg, ref := LoadConfiguration()

	app := NewApp(cfg, ref)
	app.InitializeServer()
	app.StartServer()
}
