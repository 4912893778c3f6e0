package stories

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ui/app/components/ui"
)

func row(children ...templ.Component) *ui.Node {
	return ui.El("div", children...).WithClass("flex flex-wrap items-center gap-4")
}

func stack(children ...templ.Component) *ui.Node {
	return ui.El("div", children...).WithClass("flex max-w-sm flex-col gap-6")
}

// axisValues lists the values of one axis of a component's variant table.
func axisValues(component, axis string) []string {
	t, ok := ui.VariantTable(component)
	if !ok {
		return nil
	}
	for _, a := range t.Describe() {
		if a.Name == axis {
			values := make([]string, 0, len(a.Values))
			for _, v := range a.Values {
				values = append(values, v.Value)
			}
			return values
		}
	}
	return nil
}

var sides = []ui.Side{ui.SideTop, ui.SideRight, ui.SideBottom, ui.SideLeft}

func builtin() []Story {
	return []Story{
		{
			Group:       "button",
			Name:        "variants",
			Description: "Every value of the variant axis at the default size.",
			Render: func() templ.Component {
				r := row()
				for _, v := range axisValues("button", "variant") {
					r.Append(ui.Button(ui.Variant(ui.ButtonVariant(v)), ui.Content[*ui.ButtonConfig](v)))
				}
				return r
			},
		},
		{
			Group:       "button",
			Name:        "sizes",
			Description: "Every value of the size axis.",
			Render: func() templ.Component {
				return row(
					ui.Button(ui.Size(ui.ButtonSizeSm), ui.Content[*ui.ButtonConfig]("Small")),
					ui.Button(ui.Size(ui.ButtonSizeMd), ui.Content[*ui.ButtonConfig]("Medium")),
					ui.Button(ui.Size(ui.ButtonSizeLg), ui.Content[*ui.ButtonConfig]("Large")),
				)
			},
		},
		{
			Group:       "button",
			Name:        "states",
			Description: "Disabled and loading buttons.",
			Render: func() templ.Component {
				return row(
					ui.Button(ui.ButtonDisabled(true), ui.Content[*ui.ButtonConfig]("Disabled")),
					ui.Button(ui.ButtonLoading(true), ui.Content[*ui.ButtonConfig]("Saving")),
				)
			},
		},
		{
			Group:       "button",
			Name:        "override",
			Description: "A primary medium button whose horizontal padding is overridden with px-10.",
			Render: func() templ.Component {
				return ui.Button(
					ui.Variant(ui.ButtonVariantPrimary),
					ui.Size(ui.ButtonSizeMd),
					ui.Class[*ui.ButtonConfig]("px-10"),
					ui.Content[*ui.ButtonConfig]("Wide"),
				)
			},
		},
		{
			Group:       "icon-button",
			Name:        "sizes",
			Description: "Square buttons sharing the button size axis.",
			Render: func() templ.Component {
				r := row()
				for _, s := range []ui.ButtonSize{ui.ButtonSizeSm, ui.ButtonSizeMd, ui.ButtonSizeLg} {
					r.Append(ui.IconButton(
						ui.Size(s),
						ui.Variant(ui.ButtonVariantOutline),
						ui.ButtonLabel("Add "+string(s)),
						ui.Content[*ui.ButtonConfig]("+"),
					))
				}
				return r
			},
		},
		{
			Group:       "badge",
			Name:        "variants",
			Description: "Every value of the badge variant axis.",
			Render: func() templ.Component {
				r := row()
				for _, v := range axisValues("badge", "variant") {
					r.Append(ui.Badge(ui.WithBadgeVariant(ui.BadgeVariant(v)), ui.Content[*ui.BadgeConfig](v)))
				}
				return r
			},
		},
		{
			Group:       "form",
			Name:        "inputs",
			Description: "Input and textarea in their default, disabled and invalid states.",
			Render: func() templ.Component {
				return stack(
					ui.Input(ui.InputPlaceholder("Email"), ui.InputType("email")),
					ui.Input(ui.InputPlaceholder("Disabled"), ui.InputDisabled(true)),
					ui.Input(ui.InputValue("not-an-email"), ui.InputInvalid(true)),
					ui.Textarea(ui.TextareaPlaceholder("Tell us a little about yourself")),
				)
			},
		},
		{
			Group:       "form",
			Name:        "field",
			Description: "Form fields wiring label, description and validation message to the control.",
			Render: func() templ.Component {
				return stack(
					ui.FormField(
						ui.FormFieldLabel("Username"),
						ui.FormFieldDescription("This is your public display name."),
						ui.FormFieldControl(ui.Input(ui.InputName("username"))),
					),
					ui.FormField(
						ui.FormFieldLabel("Email"),
						ui.FormFieldMessage("Email is required."),
						ui.FormFieldControl(ui.Input(ui.InputName("email"), ui.InputType("email"))),
					),
				)
			},
		},
		{
			Group:       "card",
			Name:        "default",
			Description: "A card with header, content and footer.",
			Render: func() templ.Component {
				return ui.Card(
					ui.Class[*ui.CardConfig]("w-[350px]"),
					ui.Child[*ui.CardConfig](
						ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
							ui.CardTitle(ui.Content[*ui.CardTitleConfig]("Create project")),
							ui.CardDescription(ui.Content[*ui.CardDescriptionConfig]("Deploy your new project in one click.")),
						)),
						ui.CardContent(ui.Child[*ui.CardContentConfig](ui.Input(ui.InputPlaceholder("Name of your project")))),
						ui.CardFooter(
							ui.Class[*ui.CardFooterConfig]("justify-between"),
							ui.Child[*ui.CardFooterConfig](
								ui.Button(ui.Variant(ui.ButtonVariantOutline), ui.Content[*ui.ButtonConfig]("Cancel")),
								ui.Button(ui.Content[*ui.ButtonConfig]("Deploy")),
							),
						),
					),
				)
			},
		},
		{
			Group:       "accordion",
			Name:        "single",
			Description: "Only one item open at a time.",
			Render: func() templ.Component {
				return accordion(ui.AccordionSingle)
			},
		},
		{
			Group:       "accordion",
			Name:        "multiple",
			Description: "Items open independently.",
			Render: func() templ.Component {
				return accordion(ui.AccordionMultiple)
			},
		},
		{
			Group:       "popover",
			Name:        "sides",
			Description: "A popover on each side of its trigger.",
			Render: func() templ.Component {
				r := row().WithClass("p-24")
				for _, s := range sides {
					r.Append(ui.Popover(
						ui.PopoverSide(s),
						ui.PopoverTrigger(ui.Text(string(s))),
						ui.Content[*ui.PopoverConfig]("Placed on the "+string(s)+"."),
					))
				}
				return r
			},
		},
		{
			Group:       "tooltip",
			Name:        "sides",
			Description: "A tooltip on each side of its trigger.",
			Render: func() templ.Component {
				r := row().WithClass("p-24")
				for _, s := range sides {
					r.Append(ui.Tooltip(
						ui.TooltipSide(s),
						ui.TooltipText("Tooltip on the "+string(s)),
						ui.Child[*ui.TooltipConfig](ui.Button(ui.Variant(ui.ButtonVariantOutline), ui.Content[*ui.ButtonConfig](string(s)))),
					))
				}
				return r
			},
		},
		{
			Group:       "dropdown-menu",
			Name:        "default",
			Description: "A menu with a label, items, a separator and a disabled destructive item.",
			Render: func() templ.Component {
				return ui.DropdownMenu(
					ui.DropdownMenuTrigger(ui.Text("Open menu")),
					ui.Child[*ui.DropdownMenuConfig](
						ui.DropdownMenuLabel(ui.Content[*ui.DropdownMenuLabelConfig]("My account")),
						ui.DropdownMenuSeparator(),
						ui.DropdownMenuItem(ui.Content[*ui.DropdownMenuItemConfig]("Profile")),
						ui.DropdownMenuItem(ui.DropdownMenuItemHref("#settings"), ui.Content[*ui.DropdownMenuItemConfig]("Settings")),
						ui.DropdownMenuSeparator(),
						ui.DropdownMenuItem(
							ui.WithDropdownMenuItemVariant(ui.DropdownMenuItemDestructive),
							ui.Content[*ui.DropdownMenuItemConfig]("Delete account"),
						),
						ui.DropdownMenuItem(ui.DropdownMenuItemDisabled(true), ui.Content[*ui.DropdownMenuItemConfig]("Billing")),
					),
				)
			},
		},
		{
			Group:       "avatar",
			Name:        "sizes",
			Description: "Image avatars at every size.",
			Render: func() templ.Component {
				r := row()
				for _, v := range axisValues("avatar", "size") {
					r.Append(ui.Avatar(
						ui.WithAvatarSize(ui.AvatarSize(v)),
						ui.AvatarSrc("https://github.com/vango-dev.png"),
						ui.AvatarName("Vango"),
					))
				}
				return r
			},
		},
		{
			Group:       "avatar",
			Name:        "fallback",
			Description: "Avatars without an image show the name's initials.",
			Render: func() templ.Component {
				return row(
					ui.Avatar(ui.AvatarName("Ada Lovelace")),
					ui.Avatar(ui.AvatarName("grace")),
				)
			},
		},
		{
			Group:       "feedback",
			Name:        "spinner",
			Description: "Spinner sizes.",
			Render: func() templ.Component {
				return row(
					ui.Spinner(ui.WithSpinnerSize(ui.SpinnerSizeSm)),
					ui.Spinner(),
					ui.Spinner(ui.WithSpinnerSize(ui.SpinnerSizeLg)),
				)
			},
		},
		{
			Group:       "feedback",
			Name:        "skeleton",
			Description: "Placeholders while content loads.",
			Render: func() templ.Component {
				return row(
					ui.Skeleton(ui.Class[*ui.SkeletonConfig]("h-12 w-12 rounded-full")),
					stack(
						ui.Skeleton(ui.Class[*ui.SkeletonConfig]("h-4 w-[250px]")),
						ui.Skeleton(ui.Class[*ui.SkeletonConfig]("h-4 w-[200px]")),
					).WithClass("gap-2"),
				)
			},
		},
		{
			Group:       "dialog",
			Name:        "open",
			Description: "A dialog rendered open, closed by its Cancel button.",
			Render: func() templ.Component {
				return ui.Dialog(
					ui.DialogOpen(true),
					ui.DialogTitle("Edit profile"),
					ui.DialogDescription("Make changes to your profile here."),
					ui.Child[*ui.DialogConfig](
						ui.Input(ui.InputValue("Ada Lovelace")),
						ui.DialogFooter(ui.Child[*ui.DialogFooterConfig](
							ui.DialogClose(ui.Content[*ui.ButtonConfig]("Cancel")),
						)),
					),
				)
			},
		},
	}
}

func accordion(t ui.AccordionType) templ.Component {
	item := func(q, a string, open bool) templ.Component {
		return ui.AccordionItem(
			ui.AccordionItemOpen(open),
			ui.Child[*ui.AccordionItemConfig](
				ui.AccordionTrigger(ui.Content[*ui.AccordionTriggerConfig](q)),
				ui.AccordionContent(ui.Content[*ui.AccordionContentConfig](a)),
			),
		)
	}
	return ui.Accordion(
		ui.WithAccordionType(t),
		ui.Class[*ui.AccordionConfig]("max-w-md"),
		ui.Child[*ui.AccordionConfig](
			item("Is it accessible?", "Yes. It uses native details and summary elements.", true),
			item("Is it styled?", "Yes. It comes with default utility classes.", false),
			item("Does it need script?", "No. The browser handles opening and closing.", false),
		),
	)
}
