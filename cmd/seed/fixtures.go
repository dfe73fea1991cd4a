package main

import (
	"noteful-be/internal/entity"
)

func ref(s string) *string { return &s }

var seedFolders = []*entity.Folder{
	{Id: "111111111111111111111100", Name: "Archive"},
	{Id: "111111111111111111111101", Name: "Drafts"},
	{Id: "111111111111111111111102", Name: "Personal"},
	{Id: "111111111111111111111103", Name: "Work"},
}

var seedTags = []*entity.Tag{
	{Id: "222222222222222222222200", Name: "foo"},
	{Id: "222222222222222222222201", Name: "bar"},
	{Id: "222222222222222222222202", Name: "baz"},
	{Id: "222222222222222222222203", Name: "qux"},
}

var seedNotes = []*entity.Note{
	{
		Id:       "000000000000000000000000",
		Title:    "5 life lessons learned from cats",
		Content:  ref("Lorem ipsum dolor sit amet, consectetur adipiscing elit."),
		FolderId: ref("111111111111111111111100"),
		Tags:     []string{"222222222222222222222200"},
	},
	{
		Id:       "000000000000000000000001",
		Title:    "What the government doesn't want you to know about cats",
		Content:  ref("Posuere sollicitudin aliquam ultrices sagittis orci."),
		FolderId: ref("111111111111111111111101"),
		Tags:     []string{},
	},
	{
		Id:       "000000000000000000000002",
		Title:    "The most boring article about cats you'll ever read",
		Content:  ref("Amet nisl suscipit adipiscing bibendum est ultricies integer quis."),
		FolderId: ref("111111111111111111111101"),
		Tags:     []string{"222222222222222222222200", "222222222222222222222201"},
	},
	{
		Id:       "000000000000000000000003",
		Title:    "7 things lady gaga has in common with cats",
		Content:  ref("Sed faucibus turpis in eu mi bibendum neque egestas congue."),
		FolderId: ref("111111111111111111111102"),
		Tags:     []string{"222222222222222222222202"},
	},
	{
		Id:       "000000000000000000000004",
		Title:    "The most incredible article about cats you'll ever read",
		Content:  ref("Turpis nunc eget lorem dolor sed viverra ipsum."),
		FolderId: ref("111111111111111111111102"),
		Tags:     []string{"222222222222222222222201", "222222222222222222222203"},
	},
	{
		Id:      "000000000000000000000005",
		Title:   "10 ways cats can help you live to 100",
		Content: ref("Cras fermentum odio eu feugiat pretium nibh ipsum."),
		Tags:    []string{},
	},
	{
		Id:       "000000000000000000000006",
		Title:    "9 reasons you can blame the recession on cats",
		Content:  ref("Nunc sed blandit libero volutpat sed cras ornare."),
		FolderId: ref("111111111111111111111103"),
		Tags:     []string{"222222222222222222222203"},
	},
	{
		Id:       "000000000000000000000007",
		Title:    "10 ways marketers are making you addicted to cats",
		FolderId: ref("111111111111111111111103"),
		Tags:     []string{"222222222222222222222200"},
	},
}
