package vfs

// Portfolio returns the home directory shown by the terminal.
func Portfolio() *Node {
	return Dir("~",
		File("about.txt"),
		File("skills.json"),
		File("contact.md"),
		File("README.md"),
		File(".zshrc"),
		File(".vimrc"),
		Dir("projects",
			Dir("inference-server"),
			Dir("rss-feed-aggregator"),
			Dir("skripsi-lab"),
		),
		Dir("dotfiles",
			File(".zshrc"),
			Dir("nvim",
				File("init.lua"),
			),
			File("i3config"),
		),
		Dir("scripts",
			File("setup.sh"),
			File("deploy.sh"),
		),
	)
}
